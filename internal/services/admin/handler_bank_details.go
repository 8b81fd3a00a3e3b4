package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/platform/icons"
	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	apperrors "github.com/louisbranch/cashdesk/internal/services/admin/platform/errors"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/htmx"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/httpx"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

func (h *Handler) bankDetailsTable(loc *message.Printer) datatable.Table {
	table := h.baseTable(loc, "bank", routepath.BankDetailsTable)
	table.SearchPlaceholder = loc.Sprintf("search.bank_details")
	table.Columns = []datatable.Column{
		textColumn(loc, "bankName", "field.bank_name", 140),
		textColumn(loc, "accountHolderName", "field.account_holder", 150),
		textColumn(loc, "accountNumber", "field.account_number", 140),
		textColumn(loc, "branchName", "field.branch", 120),
		textColumn(loc, "swiftCode", "field.swift_code", 100),
		activeColumn(loc, "isActive", "field.status"),
		{
			Key:      "actions",
			Label:    loc.Sprintf("field.actions"),
			Align:    datatable.AlignRight,
			MinWidth: 240,
			Render: func(_ any, row datatable.Row) templ.Component {
				id := row.String("id")
				if id == "" {
					return nil
				}
				toggleLabel := loc.Sprintf("action.deactivate")
				if active, _ := row.Value("isActive").(bool); !active {
					toggleLabel = loc.Sprintf("action.activate")
				}
				return templates.ActionButtons(
					templates.ActionButton{Label: loc.Sprintf("action.edit"), URL: routepath.BankDetailEdit(id), Icon: icons.Edit, Navigate: true},
					templates.ActionButton{Label: toggleLabel, URL: routepath.BankDetailStatus(id), Tone: "warning", Icon: icons.Toggle},
					templates.ActionButton{Label: loc.Sprintf("action.delete"), URL: routepath.BankDetailDelete(id), Tone: "error", Icon: icons.Delete},
				)
			},
		},
	}
	return table
}

func (h *Handler) handleBankDetailsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	table := h.bankDetailsTable(loc)
	table.Loading = true
	title := loc.Sprintf("title.bank_details")
	h.renderPage(w, r, page, title, templates.ListPage(
		templates.PageHeading{Title: title, ActionURL: routepath.BankDetailsNew, ActionLabel: loc.Sprintf("action.add_bank_detail")},
		table.Component(datatable.ParseState(r.URL.Query(), table.Prefix())),
	))
}

// handleBankDetailsTable serves the bank details fragment; a row click
// opens the edit form.
func (h *Handler) handleBankDetailsTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	h.serveTable(w, r, loc, h.bankDetailsTable(loc), h.backend.ListBankDetails, func(w http.ResponseWriter, r *http.Request, row datatable.Row) {
		id := row.String("id")
		if id == "" {
			http.NotFound(w, r)
			return
		}
		httpx.WriteRedirect(w, r, routepath.BankDetailEdit(id))
	})
}

func bankDetailFormFields(loc *message.Printer, detail backend.BankDetail) []templates.FormField {
	return []templates.FormField{
		{Name: "bank_name", Label: loc.Sprintf("field.bank_name"), Value: detail.BankName, Required: true},
		{Name: "account_holder_name", Label: loc.Sprintf("field.account_holder"), Value: detail.AccountHolderName, Required: true},
		{Name: "account_number", Label: loc.Sprintf("field.account_number"), Value: detail.AccountNumber, Required: true},
		{Name: "branch_name", Label: loc.Sprintf("field.branch"), Value: detail.BranchName},
		{Name: "swift_code", Label: loc.Sprintf("field.swift_code"), Value: detail.SwiftCode},
		{Name: "description", Label: loc.Sprintf("field.description"), Type: "textarea", Value: detail.Description},
	}
}

func bankDetailFromForm(r *http.Request) backend.BankDetail {
	return backend.BankDetail{
		BankName:          r.PostFormValue("bank_name"),
		AccountHolderName: r.PostFormValue("account_holder_name"),
		AccountNumber:     r.PostFormValue("account_number"),
		BranchName:        r.PostFormValue("branch_name"),
		SwiftCode:         r.PostFormValue("swift_code"),
		Description:       r.PostFormValue("description"),
	}.Normalize()
}

func (h *Handler) renderBankDetailForm(w http.ResponseWriter, r *http.Request, status int, loc *message.Printer, lang string, detailID string, detail backend.BankDetail, failure string) {
	page := h.pageContext(w, r, lang, loc)
	title := loc.Sprintf("title.new_bank_detail")
	action := routepath.BankDetails
	submit := loc.Sprintf("action.create")
	if detailID != "" {
		title = loc.Sprintf("title.edit_bank_detail")
		action = routepath.BankDetail(detailID)
		submit = loc.Sprintf("action.save")
	}
	view := templates.BankDetailFormView{
		Heading: templates.PageHeading{
			Title: title,
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("title.bank_details"), URL: routepath.BankDetails},
				{Label: title},
			},
		},
		Action:  action,
		Fields:  bankDetailFormFields(loc, detail),
		Submit:  submit,
		Message: failure,
	}
	h.renderPageStatus(w, r, status, page, title, templates.BankDetailForm(view))
}

func (h *Handler) handleBankDetailNew(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	h.renderBankDetailForm(w, r, http.StatusOK, loc, lang, "", backend.BankDetail{}, "")
}

// handleBankDetailCreate validates and creates a bank detail. Failures
// re-render the form with the submitted values.
func (h *Handler) handleBankDetailCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if err := r.ParseForm(); err != nil {
		invalidRequest(w, loc, "error.invalid_form")
		return
	}
	detail := bankDetailFromForm(r)
	err := detail.Validate()
	if err == nil {
		err = h.backend.CreateBankDetail(r.Context(), detail)
	}
	if err != nil {
		log.Printf("create bank detail: %v", err)
		h.renderBankDetailForm(w, r, apperrors.HTTPStatus(err), loc, lang, "", detail, failureMessage(loc, err))
		return
	}
	h.finishWrite(w, r, routepath.BankDetails, nil, storage.JournalEntry{
		Kind:     storage.KindBankDetail,
		Decision: storage.DecisionCreate,
		Detail:   detail.BankName + " " + detail.AccountNumber,
	}, "flash.bank_detail_create")
}

// findBankDetail looks a bank detail up in the admin's list; the backend
// has no single-item read.
func (h *Handler) findBankDetail(r *http.Request, detailID string) (datatable.Row, error) {
	rows, err := h.backend.ListBankDetails(r.Context())
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.String("id") == detailID {
			return row, nil
		}
	}
	return nil, apperrors.EK(apperrors.KindNotFound, "error.bank_detail_not_found", "bank detail not found")
}

func (h *Handler) handleBankDetailEdit(w http.ResponseWriter, r *http.Request, detailID string) {
	loc, lang := h.localizer(w, r)
	row, err := h.findBankDetail(r, strings.TrimSpace(detailID))
	if err != nil {
		log.Printf("find bank detail %s: %v", detailID, err)
		h.renderBankDetailForm(w, r, apperrors.HTTPStatus(err), loc, lang, detailID, backend.BankDetail{}, failureMessage(loc, err))
		return
	}
	h.renderBankDetailForm(w, r, http.StatusOK, loc, lang, detailID, backend.BankDetailFromRow(row), "")
}

func (h *Handler) handleBankDetailUpdate(w http.ResponseWriter, r *http.Request, detailID string) {
	loc, lang := h.localizer(w, r)
	if err := r.ParseForm(); err != nil {
		invalidRequest(w, loc, "error.invalid_form")
		return
	}
	detail := bankDetailFromForm(r)
	err := detail.Validate()
	if err == nil {
		err = h.backend.UpdateBankDetail(r.Context(), detailID, detail)
	}
	if err != nil {
		log.Printf("update bank detail %s: %v", detailID, err)
		h.renderBankDetailForm(w, r, apperrors.HTTPStatus(err), loc, lang, detailID, detail, failureMessage(loc, err))
		return
	}
	h.finishWrite(w, r, routepath.BankDetails, nil, storage.JournalEntry{
		Kind:      storage.KindBankDetail,
		SubjectID: detailID,
		Decision:  storage.DecisionUpdate,
	}, "flash.bank_detail_update")
}

// handleBankDetailStatusDialog confirms flipping the activation flag. The
// target state is read from the current list so the dialog names it.
func (h *Handler) handleBankDetailStatusDialog(w http.ResponseWriter, r *http.Request, detailID string) {
	loc, _ := h.localizer(w, r)
	decision := storage.DecisionDeactivate
	if row, err := h.findBankDetail(r, detailID); err == nil {
		if active, _ := row.Value("isActive").(bool); !active {
			decision = storage.DecisionActivate
		}
	} else {
		log.Printf("find bank detail %s: %v", detailID, err)
	}
	htmx.RenderFragment(w, r, http.StatusOK, templates.ConfirmDialog(templates.ConfirmView{
		ID:           "bank-status",
		Title:        loc.Sprintf("action." + decision),
		Message:      loc.Sprintf("confirm."+decision, detailID),
		ActionURL:    routepath.BankDetailStatus(detailID),
		Decision:     decision,
		Tone:         "warning",
		ConfirmLabel: loc.Sprintf("action." + decision),
		CancelLabel:  loc.Sprintf("action.cancel"),
	}))
}

func (h *Handler) handleBankDetailStatus(w http.ResponseWriter, r *http.Request, detailID string) {
	loc, _ := h.localizer(w, r)
	if err := r.ParseForm(); err != nil {
		invalidRequest(w, loc, "error.invalid_form")
		return
	}
	decision, ok := parseDecision(r, storage.DecisionActivate, storage.DecisionDeactivate)
	if !ok {
		invalidRequest(w, loc, "error.invalid_decision")
		return
	}
	err := h.backend.SetBankDetailActive(r.Context(), detailID, decision == storage.DecisionActivate)
	h.finishWrite(w, r, routepath.BankDetails, err, storage.JournalEntry{
		Kind:      storage.KindBankDetail,
		SubjectID: detailID,
		Decision:  decision,
	}, "flash.bank_detail_"+decision)
}

func (h *Handler) handleBankDetailDeleteDialog(w http.ResponseWriter, r *http.Request, detailID string) {
	loc, _ := h.localizer(w, r)
	htmx.RenderFragment(w, r, http.StatusOK, templates.ConfirmDialog(templates.ConfirmView{
		ID:           "bank-delete",
		Title:        loc.Sprintf("action.delete"),
		Message:      loc.Sprintf("confirm.delete_bank_detail", detailID),
		ActionURL:    routepath.BankDetailDelete(detailID),
		Tone:         "error",
		ConfirmLabel: loc.Sprintf("action.delete"),
		CancelLabel:  loc.Sprintf("action.cancel"),
	}))
}

func (h *Handler) handleBankDetailDelete(w http.ResponseWriter, r *http.Request, detailID string) {
	err := h.backend.DeleteBankDetail(r.Context(), detailID)
	h.finishWrite(w, r, routepath.BankDetails, err, storage.JournalEntry{
		Kind:      storage.KindBankDetail,
		SubjectID: detailID,
		Decision:  storage.DecisionDelete,
	}, "flash.bank_detail_delete")
}
