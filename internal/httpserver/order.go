package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	AddressID string `json:"addressId" binding:"required"`
}

type createOrderResponse struct {
	PaymentID   string `json:"paymentId"`
	ApprovalURL string `json:"approvalUrl"`
}

type captureOrderRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	PayerID   string `json:"payerId" binding:"required"`
}

type cancelOrderRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
}

// createOrderHandler assembles a draft from the cart, authorizes payment
// and parks the draft until the client returns with the payer approval.
func createOrderHandler(svc CheckoutService, drafts *draftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		user := currentUser(c)

		draft, err := svc.BuildDraft(c.Request.Context(), user.ID, req.AddressID)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := svc.InitiatePayment(c.Request.Context(), draft); err != nil {
			respondError(c, err)
			return
		}
		drafts.Put(draft.PaymentID, user.ID, draft)

		respondData(c, http.StatusCreated, createOrderResponse{
			PaymentID:   draft.PaymentID,
			ApprovalURL: draft.ApprovalURL,
		})
	}
}

func captureOrderHandler(svc CheckoutService, drafts *draftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req captureOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		user := currentUser(c)

		draft, ok := drafts.Get(req.PaymentID, user.ID)
		if !ok {
			respondBadRequest(c, "unknown payment")
			return
		}
		order, err := svc.CapturePayment(c.Request.Context(), draft, req.PaymentID, req.PayerID)
		if err != nil {
			// A failed draft is dead; the client restarts from create.
			drafts.Remove(req.PaymentID)
			respondError(c, err)
			return
		}
		drafts.Remove(req.PaymentID)
		respondData(c, http.StatusOK, order)
	}
}

func cancelOrderHandler(svc CheckoutService, drafts *draftStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		user := currentUser(c)

		draft, ok := drafts.Get(req.PaymentID, user.ID)
		if !ok {
			respondBadRequest(c, "unknown payment")
			return
		}
		if err := svc.Cancel(draft); err != nil {
			respondError(c, err)
			return
		}
		drafts.Remove(req.PaymentID)
		respondMessage(c, http.StatusOK, "checkout cancelled")
	}
}

func listOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListByUser(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, orders)
	}
}

func orderDetailsHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, order)
	}
}
