package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/service"
)

// StudentHandler serves the student-facing surface: issues, cafeteria
// orders, feedback, lost and found, and ride sharing.
type StudentHandler struct {
	issueSvc     service.IssueService
	cafeteriaSvc service.CafeteriaService
	feedbackSvc  service.FeedbackService
	lostFoundSvc service.LostFoundService
	transportSvc service.TransportService
}

func NewStudentHandler(
	issueSvc service.IssueService,
	cafeteriaSvc service.CafeteriaService,
	feedbackSvc service.FeedbackService,
	lostFoundSvc service.LostFoundService,
	transportSvc service.TransportService,
) *StudentHandler {
	return &StudentHandler{
		issueSvc:     issueSvc,
		cafeteriaSvc: cafeteriaSvc,
		feedbackSvc:  feedbackSvc,
		lostFoundSvc: lostFoundSvc,
		transportSvc: transportSvc,
	}
}

type reportIssueRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Priority    string `json:"priority"`
}

func (h *StudentHandler) ReportIssue(w http.ResponseWriter, r *http.Request) {
	var req reportIssueRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, _ := IdentityFromContext(r.Context())
	issue, err := h.issueSvc.Report(r.Context(), id.SubjectID, id.Username, req.Category, req.Title, req.Description, req.Location, req.Priority)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, issue)
}

func (h *StudentHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	if r.URL.Query().Get("scope") == "all" {
		issues, err := h.issueSvc.ListAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, issues)
		return
	}

	issues, err := h.issueSvc.ListMine(r.Context(), id.SubjectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

func (h *StudentHandler) UpvoteIssue(w http.ResponseWriter, r *http.Request) {
	upvotes, err := h.issueSvc.Upvote(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"upvotes": upvotes})
}

type placeOrderRequest struct {
	Items []domain.OrderItem `json:"items"`
}

func (h *StudentHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, _ := IdentityFromContext(r.Context())
	order, err := h.cafeteriaSvc.PlaceOrder(r.Context(), id.SubjectID, id.Username, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *StudentHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	orders, err := h.cafeteriaSvc.ListMine(r.Context(), id.SubjectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type submitFeedbackRequest struct {
	Category string `json:"category"`
	Rating   int32  `json:"rating"`
	Text     string `json:"text"`
}

func (h *StudentHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, _ := IdentityFromContext(r.Context())
	fb, err := h.feedbackSvc.Submit(r.Context(), id.SubjectID, id.Username, req.Category, req.Rating, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

func (h *StudentHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	feedback, err := h.feedbackSvc.ListMine(r.Context(), id.SubjectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}

type postItemRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
}

func (h *StudentHandler) PostLostFoundItem(w http.ResponseWriter, r *http.Request) {
	var req postItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, _ := IdentityFromContext(r.Context())
	item, err := h.lostFoundSvc.Post(r.Context(), id.SubjectID, id.Username, domain.LostFoundType(req.Type), req.Name, req.Description, req.Location, req.Contact)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *StudentHandler) ListLostFoundItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.lostFoundSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *StudentHandler) ResolveLostFoundItem(w http.ResponseWriter, r *http.Request) {
	if err := h.lostFoundSvc.Resolve(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "resolved"})
}

type offerRideRequest struct {
	From        string `json:"from"`
	To          string `json:"to"`
	DepartureAt string `json:"departure_at"`
	Seats       int32  `json:"seats"`
	PriceCents  int64  `json:"price_cents"`
}

func (h *StudentHandler) OfferRide(w http.ResponseWriter, r *http.Request) {
	var req offerRideRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, _ := IdentityFromContext(r.Context())
	ride, err := h.transportSvc.OfferRide(r.Context(), id.SubjectID, id.Username, req.From, req.To, req.DepartureAt, req.Seats, req.PriceCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ride)
}

func (h *StudentHandler) SearchRides(w http.ResponseWriter, r *http.Request) {
	rides, err := h.transportSvc.SearchRides(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rides)
}

func (h *StudentHandler) BookRide(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	if err := h.transportSvc.BookRide(r.Context(), mux.Vars(r)["id"], id.SubjectID, id.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "booked"})
}

func (h *StudentHandler) ListMyRides(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	rides, err := h.transportSvc.ListMyRides(r.Context(), id.SubjectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rides)
}
