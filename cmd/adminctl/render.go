package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"mutant-admin/internal/client"
	"mutant-admin/internal/dashboard"
	"mutant-admin/internal/domain/entity"

	"github.com/dustin/go-humanize"
)

func newTable(out io.Writer, headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	return w
}

func printNotice(out io.Writer, notice *dashboard.Notice) {
	if notice == nil {
		return
	}
	marker := "OK"
	if notice.Kind == dashboard.NoticeError {
		marker = "ERROR"
	}
	fmt.Fprintf(out, "[%s] %s\n", marker, notice.Message)
}

func printFooter(out io.Writer, view pageView) {
	if view.errorText != "" {
		fmt.Fprintf(out, "[ERROR] %s\n", view.errorText)
	}
	if view.totalPages > 0 {
		fmt.Fprintf(out, "Page %d of %d (%d total)\n", view.page, view.totalPages, view.total)
	}
}

type pageView struct {
	page       int
	totalPages int
	total      int
	errorText  string
}

func actionList(actions []dashboard.Action) string {
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = string(action)
	}

	return strings.Join(names, ",")
}

func relative(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}

	return humanize.Time(*t)
}

func userName(ref entity.UserRef) string {
	if user, ok := ref.Value(); ok {
		if name := user.DisplayName(); name != "" {
			return name
		}
	}

	return "-"
}

func renderKYC(out io.Writer, board *dashboard.ModerationBoard[entity.KYCRecord]) {
	view := board.View()

	w := newTable(out, "USER ID", "NAME", "STATUS", "BANK", "SUBMITTED", "ACTIONS")
	for _, record := range view.Items {
		bank := "-"
		if record.BankDetails != nil && record.BankDetails.BankName != "" {
			bank = record.BankDetails.BankName
		}
		name := record.FullName
		if name == "" {
			name = userName(record.User)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			record.SubjectID(), name, record.Status, bank, relative(record.CreatedAt), actionList(board.Actions(record)))
	}
	_ = w.Flush()

	printFooter(out, pageView{page: view.Page, totalPages: view.TotalPages, total: view.Total, errorText: view.Error})
}

func renderRefunds(out io.Writer, board *dashboard.ModerationBoard[entity.Refund]) {
	view := board.View()

	w := newTable(out, "REFUND ID", "STUDENT", "AMOUNT", "STATUS", "REASON", "REQUESTED", "ACTIONS")
	for _, refund := range view.Items {
		amount := humanize.CommafWithDigits(refund.Amount, 2)
		if refund.Currency != "" {
			amount += " " + refund.Currency
		}
		reason := refund.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			refund.ID, userName(refund.Student), amount, refund.Status, reason, relative(refund.CreatedAt), actionList(board.Actions(refund)))
	}
	_ = w.Flush()

	printFooter(out, pageView{page: view.Page, totalPages: view.TotalPages, total: view.Total, errorText: view.Error})
}

func renderMissions(out io.Writer, board *dashboard.MissionBoard) {
	view := board.View()

	w := newTable(out, "MISSION ID", "TITLE", "CATEGORY", "PRICE", "RATING", "STATUS")
	for _, mission := range view.Items {
		price := "Free"
		if !mission.IsFree {
			price = humanize.CommafWithDigits(mission.Price, 2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
			mission.ID, mission.Title, mission.Category, price, mission.AverageRating, mission.Publication.Label())
	}
	_ = w.Flush()

	printFooter(out, pageView{page: view.Page, totalPages: view.TotalPages, total: view.Total, errorText: view.Error})
}

func renderHistory(out io.Writer, decisions []entity.ModerationDecision) {
	w := newTable(out, "WHEN", "RESOURCE", "ID", "DECISION", "ADMIN", "REASON")
	for _, decision := range decisions {
		createdAt := decision.CreatedAt
		reason := decision.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			relative(&createdAt), decision.Resource, decision.ResourceID, decision.Decision, decision.AdminID, reason)
	}
	_ = w.Flush()
}

func renderSession(out io.Writer, info *client.SessionInfo) {
	if info == nil || info.User == nil {
		fmt.Fprintln(out, "No session")

		return
	}

	fmt.Fprintf(out, "Name:    %s\n", info.User.DisplayName())
	fmt.Fprintf(out, "Email:   %s\n", info.User.Email)
	fmt.Fprintf(out, "Role:    %s\n", info.User.Role)
	fmt.Fprintf(out, "Expires: %s\n", humanize.Time(info.ExpiresAt))
}
