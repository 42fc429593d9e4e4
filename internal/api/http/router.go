// Package http wires the service layer to the outside world. Routing
// follows three tiers: public endpoints for signup and login, a student
// tier behind the session gate, and an admin tier for moderation.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter assembles the full route table.
func NewRouter(auth *AuthHandler, admin *AdminHandler, student *StudentHandler, mw *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/signup", auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/login", auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", auth.AdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/logout", mw.RequireAuth(auth.Logout)).Methods(http.MethodPost)

	// Student
	api.HandleFunc("/issues", mw.RequireStudent(student.ReportIssue)).Methods(http.MethodPost)
	api.HandleFunc("/issues", mw.RequireStudent(student.ListIssues)).Methods(http.MethodGet)
	api.HandleFunc("/issues/{id}/upvote", mw.RequireStudent(student.UpvoteIssue)).Methods(http.MethodPost)

	api.HandleFunc("/orders", mw.RequireStudent(student.PlaceOrder)).Methods(http.MethodPost)
	api.HandleFunc("/orders", mw.RequireStudent(student.ListOrders)).Methods(http.MethodGet)

	api.HandleFunc("/feedback", mw.RequireStudent(student.SubmitFeedback)).Methods(http.MethodPost)
	api.HandleFunc("/feedback", mw.RequireStudent(student.ListFeedback)).Methods(http.MethodGet)

	api.HandleFunc("/lost-found", mw.RequireStudent(student.PostLostFoundItem)).Methods(http.MethodPost)
	api.HandleFunc("/lost-found", mw.RequireStudent(student.ListLostFoundItems)).Methods(http.MethodGet)
	api.HandleFunc("/lost-found/{id}/resolve", mw.RequireStudent(student.ResolveLostFoundItem)).Methods(http.MethodPost)

	api.HandleFunc("/rides", mw.RequireStudent(student.OfferRide)).Methods(http.MethodPost)
	api.HandleFunc("/rides", mw.RequireStudent(student.SearchRides)).Methods(http.MethodGet)
	api.HandleFunc("/rides/mine", mw.RequireStudent(student.ListMyRides)).Methods(http.MethodGet)
	api.HandleFunc("/rides/{id}/book", mw.RequireStudent(student.BookRide)).Methods(http.MethodPost)

	// Admin
	adm := api.PathPrefix("/admin").Subrouter()
	adm.HandleFunc("/signups", mw.RequireAdmin(admin.ListPendingSignups)).Methods(http.MethodGet)
	adm.HandleFunc("/signups/{id}/approve", mw.RequireAdmin(admin.ApproveSignup)).Methods(http.MethodPost)
	adm.HandleFunc("/signups/{id}/reject", mw.RequireAdmin(admin.RejectSignup)).Methods(http.MethodPost)

	adm.HandleFunc("/students", mw.RequireAdmin(admin.ListStudents)).Methods(http.MethodGet)
	adm.HandleFunc("/students/{id}", mw.RequireAdmin(admin.GetStudent)).Methods(http.MethodGet)
	adm.HandleFunc("/students/{id}", mw.RequireAdmin(admin.RemoveStudent)).Methods(http.MethodDelete)
	adm.HandleFunc("/students/{id}/block", mw.RequireAdmin(admin.BlockStudent)).Methods(http.MethodPost)
	adm.HandleFunc("/students/{id}/unblock", mw.RequireAdmin(admin.UnblockStudent)).Methods(http.MethodPost)
	adm.HandleFunc("/students/{id}/reset-password", mw.RequireAdmin(admin.ResetStudentPassword)).Methods(http.MethodPost)

	adm.HandleFunc("/credentials", mw.RequireAdmin(admin.ChangeCredentials)).Methods(http.MethodPut)

	adm.HandleFunc("/issues", mw.RequireAdmin(admin.ListIssues)).Methods(http.MethodGet)
	adm.HandleFunc("/issues/{id}/status", mw.RequireAdmin(admin.UpdateIssueStatus)).Methods(http.MethodPut)
	adm.HandleFunc("/issues/{id}", mw.RequireAdmin(admin.DeleteIssue)).Methods(http.MethodDelete)

	adm.HandleFunc("/orders", mw.RequireAdmin(admin.ListOrders)).Methods(http.MethodGet)
	adm.HandleFunc("/orders/{id}/status", mw.RequireAdmin(admin.UpdateOrderStatus)).Methods(http.MethodPut)

	adm.HandleFunc("/lost-found/{id}", mw.RequireAdmin(admin.DeleteLostFoundItem)).Methods(http.MethodDelete)

	adm.HandleFunc("/stats/students", mw.RequireAdmin(admin.StudentSummary)).Methods(http.MethodGet)
	adm.HandleFunc("/stats/issues", mw.RequireAdmin(admin.IssueCategoryStats)).Methods(http.MethodGet)
	adm.HandleFunc("/stats/courses", mw.RequireAdmin(admin.CourseStats)).Methods(http.MethodGet)
	adm.HandleFunc("/stats/activity", mw.RequireAdmin(admin.ActivityMetrics)).Methods(http.MethodGet)
	adm.HandleFunc("/stats/monthly-report", mw.RequireAdmin(admin.MonthlyReport)).Methods(http.MethodGet)

	return r
}
