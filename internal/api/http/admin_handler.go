package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/service"
)

// AdminHandler serves the moderation surface: the signup review queue,
// student management, credential rotation, and the activity dashboard.
type AdminHandler struct {
	signupSvc     service.SignupService
	moderationSvc service.ModerationService
	authSvc       service.AuthService
	activitySvc   service.ActivityService
	issueSvc      service.IssueService
	cafeteriaSvc  service.CafeteriaService
	lostFoundSvc  service.LostFoundService
}

func NewAdminHandler(
	signupSvc service.SignupService,
	moderationSvc service.ModerationService,
	authSvc service.AuthService,
	activitySvc service.ActivityService,
	issueSvc service.IssueService,
	cafeteriaSvc service.CafeteriaService,
	lostFoundSvc service.LostFoundService,
) *AdminHandler {
	return &AdminHandler{
		signupSvc:     signupSvc,
		moderationSvc: moderationSvc,
		authSvc:       authSvc,
		activitySvc:   activitySvc,
		issueSvc:      issueSvc,
		cafeteriaSvc:  cafeteriaSvc,
		lostFoundSvc:  lostFoundSvc,
	}
}

func (h *AdminHandler) ListPendingSignups(w http.ResponseWriter, r *http.Request) {
	pending, err := h.signupSvc.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

func (h *AdminHandler) ApproveSignup(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	account, err := h.signupSvc.Approve(r.Context(), mux.Vars(r)["id"], id.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AdminHandler) RejectSignup(w http.ResponseWriter, r *http.Request) {
	if err := h.signupSvc.Reject(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

func (h *AdminHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		students []domain.Account
		err      error
	)
	if query != "" {
		students, err = h.moderationSvc.SearchStudents(r.Context(), query)
	} else {
		students, err = h.moderationSvc.ListStudents(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *AdminHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.moderationSvc.GetStudent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

type blockRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) BlockStudent(w http.ResponseWriter, r *http.Request) {
	var req blockRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, _ := IdentityFromContext(r.Context())
	if err := h.moderationSvc.Block(r.Context(), mux.Vars(r)["id"], id.Username, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "blocked"})
}

func (h *AdminHandler) UnblockStudent(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	if err := h.moderationSvc.Unblock(r.Context(), mux.Vars(r)["id"], id.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unblocked"})
}

func (h *AdminHandler) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.moderationSvc.RemoveStudent(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (h *AdminHandler) ResetStudentPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, _ := IdentityFromContext(r.Context())
	if err := h.moderationSvc.ResetPassword(r.Context(), mux.Vars(r)["id"], id.Username, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password reset"})
}

type changeCredentialsRequest struct {
	CurrentUsername string `json:"current_username"`
	CurrentPassword string `json:"current_password"`
	NewUsername     string `json:"new_username"`
	NewPassword     string `json:"new_password"`
}

func (h *AdminHandler) ChangeCredentials(w http.ResponseWriter, r *http.Request) {
	var req changeCredentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	err := h.authSvc.ChangeAdminCredentials(r.Context(), req.CurrentUsername, req.CurrentPassword, req.NewUsername, req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "credentials updated"})
}

func (h *AdminHandler) StudentSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.activitySvc.StudentSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *AdminHandler) IssueCategoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.activitySvc.IssueCategoryStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) CourseStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.activitySvc.CourseStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ActivityMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.activitySvc.ActivityMetrics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *AdminHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.activitySvc.MonthlyReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issueSvc.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateIssueStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.issueSvc.UpdateStatus(r.Context(), mux.Vars(r)["id"], domain.IssueStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) DeleteIssue(w http.ResponseWriter, r *http.Request) {
	if err := h.issueSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.cafeteriaSvc.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.cafeteriaSvc.UpdateStatus(r.Context(), mux.Vars(r)["id"], domain.OrderStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) DeleteLostFoundItem(w http.ResponseWriter, r *http.Request) {
	if err := h.lostFoundSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
