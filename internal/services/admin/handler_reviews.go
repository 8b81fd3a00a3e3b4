package admin

import (
	"context"
	"log"
	"net/http"
	"net/url"
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

// reviewFlow describes the approve/reject cycle of one pending request kind.
type reviewFlow struct {
	kind      string
	titleKey  string
	listURL   string
	actionURL func(id string) string
	apply     func(ctx context.Context, id string, decision string) error
	fields    []fieldSpec
}

func (h *Handler) depositReview(loc *message.Printer) reviewFlow {
	return reviewFlow{
		kind:      storage.KindDeposit,
		titleKey:  "review.deposit",
		listURL:   routepath.Deposits,
		actionURL: routepath.DepositReview,
		apply: func(ctx context.Context, id string, decision string) error {
			return h.backend.UpdateDepositStatus(ctx, id, decision == storage.DecisionReject)
		},
		fields: []fieldSpec{
			{key: "id", labelKey: "field.id"},
			{key: "transaction_id", labelKey: "field.transaction_id"},
			{key: "username", labelKey: "field.username"},
			{key: "amount", labelKey: "field.amount", format: textOrEmpty(moneyFormat(loc, amountScale))},
			{key: "created_at", labelKey: "field.date", format: textOrEmpty(formatTime)},
		},
	}
}

func (h *Handler) withdrawalReview(loc *message.Printer) reviewFlow {
	return reviewFlow{
		kind:      storage.KindWithdrawal,
		titleKey:  "review.withdrawal",
		listURL:   routepath.Withdrawals,
		actionURL: routepath.WithdrawalReview,
		apply: func(ctx context.Context, id string, decision string) error {
			return h.backend.UpdateWithdrawalStatus(ctx, id, decision == storage.DecisionReject)
		},
		fields: withdrawalFields(loc),
	}
}

func (h *Handler) kycReview(loc *message.Printer) reviewFlow {
	return reviewFlow{
		kind:      storage.KindKYC,
		titleKey:  "review.kyc",
		listURL:   routepath.KYC,
		actionURL: routepath.KYCReview,
		apply: func(ctx context.Context, id string, decision string) error {
			status := backend.KYCApproved
			if decision == storage.DecisionReject {
				status = backend.KYCRejected
			}
			return h.backend.UpdateKYCStatus(ctx, id, status)
		},
		fields: []fieldSpec{
			{key: "id", labelKey: "field.id"},
			{key: "username", labelKey: "field.username"},
			{key: "email", labelKey: "field.email"},
			{key: "id_document_path", labelKey: "field.id_document", format: h.fileField},
			{key: "selfie_with_id_path", labelKey: "field.selfie", format: h.fileField},
			{key: "created_at", labelKey: "field.submitted", format: textOrEmpty(formatTime)},
		},
	}
}

func withdrawalFields(loc *message.Printer) []fieldSpec {
	return []fieldSpec{
		{key: "id", labelKey: "field.id"},
		{key: "transaction_id", labelKey: "field.transaction_id"},
		{key: "username", labelKey: "field.username"},
		{key: "amount", labelKey: "field.amount", format: textOrEmpty(moneyFormat(loc, amountScale))},
		{key: "created_at", labelKey: "field.date", format: textOrEmpty(formatTime)},
		{key: "account_holder_name", labelKey: "field.account_holder"},
		{key: "bank_name", labelKey: "field.bank_name"},
		{key: "account_number", labelKey: "field.account_number"},
		{key: "status", labelKey: "field.status"},
	}
}

func (h *Handler) fileField(value any) string {
	path, ok := datatable.Stringify(value)
	if !ok || strings.TrimSpace(path) == "" {
		return ""
	}
	return h.fileURL(path)
}

// reviewActions renders approve and reject buttons for a pending row.
func reviewActions(loc *message.Printer, flow reviewFlow) datatable.Column {
	return datatable.Column{
		Key:      "actions",
		Label:    loc.Sprintf("field.actions"),
		Align:    datatable.AlignRight,
		MinWidth: 200,
		Render: func(_ any, row datatable.Row) templ.Component {
			id := row.String("id")
			if id == "" {
				return nil
			}
			return templates.ActionButtons(
				templates.ActionButton{
					Label: loc.Sprintf("action.approve"),
					URL:   decisionURL(flow.actionURL(id), storage.DecisionApprove),
					Tone:  "success",
					Icon:  icons.Approve,
				},
				templates.ActionButton{
					Label: loc.Sprintf("action.reject"),
					URL:   decisionURL(flow.actionURL(id), storage.DecisionReject),
					Tone:  "error",
					Icon:  icons.Reject,
				},
			)
		},
	}
}

func decisionURL(path string, decision string) string {
	return routepath.WithQuery(path, url.Values{"decision": {decision}})
}

// reviewDialog offers both decisions for a clicked row.
func (h *Handler) reviewDialog(loc *message.Printer, flow reviewFlow, id string, row datatable.Row) templ.Component {
	return templates.ReviewDialog(templates.ReviewView{
		ID:         flow.kind + "-review",
		Title:      loc.Sprintf(flow.titleKey),
		Fields:     rowFields(row, flow.fields, loc),
		EmptyValue: datatable.DefaultEmptyValue,
		ActionURL:  flow.actionURL(id),
		Decisions: []templates.ReviewDecision{
			{Decision: storage.DecisionApprove, Label: loc.Sprintf("action.approve"), Tone: "success"},
			{Decision: storage.DecisionReject, Label: loc.Sprintf("action.reject"), Tone: "error"},
		},
		CancelLabel: loc.Sprintf("action.cancel"),
	})
}

// renderRowReview opens the review dialog for a clicked row.
func (h *Handler) renderRowReview(w http.ResponseWriter, r *http.Request, loc *message.Printer, flow reviewFlow, row datatable.Row) {
	id := row.String("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	htmx.RenderFragment(w, r, http.StatusOK, h.reviewDialog(loc, flow, id, row))
}

// handleReviewDialog renders the confirmation for one decision, or the
// full review dialog when no decision is requested.
func (h *Handler) handleReviewDialog(w http.ResponseWriter, r *http.Request, flow reviewFlow, loc *message.Printer, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		http.NotFound(w, r)
		return
	}
	decision := strings.TrimSpace(r.URL.Query().Get("decision"))
	if decision == "" {
		htmx.RenderFragment(w, r, http.StatusOK, h.reviewDialog(loc, flow, id, datatable.Row{"id": id}))
		return
	}
	if decision != storage.DecisionApprove && decision != storage.DecisionReject {
		invalidRequest(w, loc, "error.invalid_decision")
		return
	}
	tone := "success"
	if decision == storage.DecisionReject {
		tone = "error"
	}
	htmx.RenderFragment(w, r, http.StatusOK, templates.ConfirmDialog(templates.ConfirmView{
		ID:           flow.kind + "-confirm",
		Title:        loc.Sprintf(flow.titleKey),
		Message:      loc.Sprintf("confirm."+decision, id),
		ActionURL:    flow.actionURL(id),
		Decision:     decision,
		Tone:         tone,
		ConfirmLabel: loc.Sprintf("action." + decision),
		CancelLabel:  loc.Sprintf("action.cancel"),
	}))
}

// handleReviewSubmit applies the posted decision and returns to the list.
func (h *Handler) handleReviewSubmit(w http.ResponseWriter, r *http.Request, flow reviewFlow, loc *message.Printer, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		invalidRequest(w, loc, "error.invalid_form")
		return
	}
	decision, ok := parseDecision(r, storage.DecisionApprove, storage.DecisionReject)
	if !ok {
		invalidRequest(w, loc, "error.invalid_decision")
		return
	}
	err := flow.apply(r.Context(), id, decision)
	h.finishWrite(w, r, flow.listURL, err, storage.JournalEntry{
		Kind:      flow.kind,
		SubjectID: id,
		Decision:  decision,
	}, "flash."+flow.kind+"_"+decision)
}

// listPage renders a list page whose table loads itself.
func (h *Handler) listPage(w http.ResponseWriter, r *http.Request, titleKey string, table func(loc *message.Printer) datatable.Table) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	t := table(loc)
	t.Loading = true
	title := loc.Sprintf(titleKey)
	h.renderPage(w, r, page, title, templates.ListPage(
		templates.PageHeading{Title: title},
		t.Component(datatable.ParseState(r.URL.Query(), t.Prefix())),
	))
}

func (h *Handler) baseTable(loc *message.Printer, id string, tableURL string) datatable.Table {
	return datatable.Table{
		ID:           id,
		URL:          tableURL,
		RowKey:       rowID,
		EmptyValue:   datatable.DefaultEmptyValue,
		EmptyMessage: loc.Sprintf("table.empty"),
		Labels:       templates.TableLabels(loc),
	}
}

// rowID keys backend records by their id field.
func rowID(row datatable.Row) string {
	return row.String("id")
}

func (h *Handler) depositsTable(loc *message.Printer) datatable.Table {
	table := h.baseTable(loc, "deposits", routepath.DepositsTable)
	table.SearchPlaceholder = loc.Sprintf("search.deposits")
	table.Columns = []datatable.Column{
		textColumn(loc, "id", "field.id", 80),
		textColumn(loc, "transaction_id", "field.transaction_id", 150),
		textColumn(loc, "username", "field.username", 120),
		moneyColumn(loc, "amount", "field.amount"),
		timeColumn(loc, "created_at", "field.date"),
		h.fileColumn(loc, "image_path", "field.receipt"),
		reviewActions(loc, h.depositReview(loc)),
	}
	return table
}

func (h *Handler) withdrawalsTable(loc *message.Printer) datatable.Table {
	table := h.baseTable(loc, "withdrawals", routepath.WithdrawalsTable)
	table.SearchPlaceholder = loc.Sprintf("search.withdrawals")
	table.Columns = []datatable.Column{
		textColumn(loc, "id", "field.id", 80),
		textColumn(loc, "transaction_id", "field.transaction_id", 150),
		textColumn(loc, "username", "field.username", 120),
		moneyColumn(loc, "amount", "field.amount"),
		timeColumn(loc, "created_at", "field.date"),
		textColumn(loc, "account_holder_name", "field.account_holder", 150),
		textColumn(loc, "bank_name", "field.bank_name", 120),
		reviewActions(loc, h.withdrawalReview(loc)),
	}
	return table
}

func (h *Handler) kycTable(loc *message.Printer) datatable.Table {
	table := h.baseTable(loc, "kyc", routepath.KYCTable)
	table.SearchPlaceholder = loc.Sprintf("search.kyc")
	table.Columns = []datatable.Column{
		textColumn(loc, "id", "field.id", 80),
		textColumn(loc, "username", "field.username", 120),
		textColumn(loc, "email", "field.email", 180),
		h.fileColumn(loc, "id_document_path", "field.id_document"),
		h.fileColumn(loc, "selfie_with_id_path", "field.selfie"),
		timeColumn(loc, "created_at", "field.submitted"),
		reviewActions(loc, h.kycReview(loc)),
	}
	return table
}

func (h *Handler) handleDepositsPage(w http.ResponseWriter, r *http.Request) {
	h.listPage(w, r, "title.deposits", h.depositsTable)
}

// handleDepositsTable serves the deposits fragment; a row click opens the
// review dialog for that deposit.
func (h *Handler) handleDepositsTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	flow := h.depositReview(loc)
	h.serveTable(w, r, loc, h.depositsTable(loc), h.backend.ListPendingDeposits, func(w http.ResponseWriter, r *http.Request, row datatable.Row) {
		h.renderRowReview(w, r, loc, flow, row)
	})
}

func (h *Handler) handleDepositReviewDialog(w http.ResponseWriter, r *http.Request, depositID string) {
	loc, _ := h.localizer(w, r)
	h.handleReviewDialog(w, r, h.depositReview(loc), loc, depositID)
}

func (h *Handler) handleDepositReview(w http.ResponseWriter, r *http.Request, depositID string) {
	loc, _ := h.localizer(w, r)
	h.handleReviewSubmit(w, r, h.depositReview(loc), loc, depositID)
}

func (h *Handler) handleWithdrawalsPage(w http.ResponseWriter, r *http.Request) {
	h.listPage(w, r, "title.withdrawals", h.withdrawalsTable)
}

// handleWithdrawalsTable serves the withdrawals fragment; a row click
// navigates to the withdrawal detail page.
func (h *Handler) handleWithdrawalsTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	h.serveTable(w, r, loc, h.withdrawalsTable(loc), h.backend.ListPendingWithdrawals, func(w http.ResponseWriter, r *http.Request, row datatable.Row) {
		id := row.String("id")
		if id == "" {
			http.NotFound(w, r)
			return
		}
		httpx.WriteRedirect(w, r, routepath.Withdrawal(id))
	})
}

func (h *Handler) handleWithdrawalReviewDialog(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	loc, _ := h.localizer(w, r)
	h.handleReviewDialog(w, r, h.withdrawalReview(loc), loc, withdrawalID)
}

func (h *Handler) handleWithdrawalReview(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	loc, _ := h.localizer(w, r)
	h.handleReviewSubmit(w, r, h.withdrawalReview(loc), loc, withdrawalID)
}

// handleWithdrawalDetail renders one withdrawal with its actions.
func (h *Handler) handleWithdrawalDetail(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	title := loc.Sprintf("title.withdrawal")
	view := templates.WithdrawalDetailView{
		Heading: templates.PageHeading{
			Title: title,
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("title.withdrawals"), URL: routepath.Withdrawals},
				{Label: withdrawalID},
			},
		},
		EmptyValue: datatable.DefaultEmptyValue,
	}

	row, err := h.backend.GetWithdrawal(r.Context(), withdrawalID)
	if err != nil {
		log.Printf("get withdrawal %s: %v", withdrawalID, err)
		view.Message = failureMessage(loc, err)
		h.renderPageStatus(w, r, apperrors.HTTPStatus(err), page, title, templates.WithdrawalDetail(view, loc))
		return
	}
	view.Fields = rowFields(row, withdrawalFields(loc), loc)
	view.Actions = []templates.ActionButton{
		{Label: loc.Sprintf("action.approve"), URL: decisionURL(routepath.WithdrawalReview(withdrawalID), storage.DecisionApprove), Tone: "success", Icon: icons.Approve},
		{Label: loc.Sprintf("action.reject"), URL: decisionURL(routepath.WithdrawalReview(withdrawalID), storage.DecisionReject), Tone: "error", Icon: icons.Reject},
		{Label: loc.Sprintf("action.delete"), URL: routepath.WithdrawalDelete(withdrawalID), Tone: "warning", Icon: icons.Delete},
	}
	h.renderPage(w, r, page, title, templates.WithdrawalDetail(view, loc))
}

func (h *Handler) handleWithdrawalDeleteDialog(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	loc, _ := h.localizer(w, r)
	htmx.RenderFragment(w, r, http.StatusOK, templates.ConfirmDialog(templates.ConfirmView{
		ID:           "withdrawal-delete",
		Title:        loc.Sprintf("action.delete"),
		Message:      loc.Sprintf("confirm.delete_withdrawal", withdrawalID),
		ActionURL:    routepath.WithdrawalDelete(withdrawalID),
		Tone:         "error",
		ConfirmLabel: loc.Sprintf("action.delete"),
		CancelLabel:  loc.Sprintf("action.cancel"),
	}))
}

// handleWithdrawalDelete removes a withdrawal and returns to the list; a
// failure returns to the detail page.
func (h *Handler) handleWithdrawalDelete(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	err := h.backend.DeleteWithdrawal(r.Context(), withdrawalID)
	location := routepath.Withdrawals
	if err != nil {
		location = routepath.Withdrawal(withdrawalID)
	}
	h.finishWrite(w, r, location, err, storage.JournalEntry{
		Kind:      storage.KindWithdrawal,
		SubjectID: withdrawalID,
		Decision:  storage.DecisionDelete,
	}, "flash.withdrawal_delete")
}

func (h *Handler) handleKYCPage(w http.ResponseWriter, r *http.Request) {
	h.listPage(w, r, "title.kyc", h.kycTable)
}

// handleKYCTable serves the KYC fragment; a row click opens the review
// dialog with the submitted documents.
func (h *Handler) handleKYCTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	flow := h.kycReview(loc)
	h.serveTable(w, r, loc, h.kycTable(loc), h.backend.ListPendingKYC, func(w http.ResponseWriter, r *http.Request, row datatable.Row) {
		h.renderRowReview(w, r, loc, flow, row)
	})
}

func (h *Handler) handleKYCReviewDialog(w http.ResponseWriter, r *http.Request, kycID string) {
	loc, _ := h.localizer(w, r)
	h.handleReviewDialog(w, r, h.kycReview(loc), loc, kycID)
}

func (h *Handler) handleKYCReview(w http.ResponseWriter, r *http.Request, kycID string) {
	loc, _ := h.localizer(w, r)
	h.handleReviewSubmit(w, r, h.kycReview(loc), loc, kycID)
}
