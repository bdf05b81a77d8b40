package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/piadesu/attn-store/internal/order/domain"
	"github.com/piadesu/attn-store/internal/providers/pdf"
)

func (s *Server) CreateOrder(c *gin.Context) {
	var req orderdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListOrders(c *gin.Context) {
	req := orderdomain.ListRequest{
		Status: c.Query("status"),
	}

	resp, err := s.orderSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetOrder(c *gin.Context) {
	resp, err := s.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListOrderItems(c *gin.Context) {
	resp, err := s.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp.Items)
}

func (s *Server) ListAllOrderItems(c *gin.Context) {
	resp, err := s.orderSvc.ListItems(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) OrderReceipt(c *gin.Context) {
	order, err := s.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := pdf.ReceiptData{
		StoreName: s.cfg.AppName,
		OrderID:   order.ID,
		Status:    order.Status,
		CusName:   stringOrDash(order.CusName),
		OrderDate: order.OrderDate.Format("2006-01-02"),
		Total:     formatAmount(order.TotalAmt),
	}
	if order.DueDate != nil {
		data.DueDate = order.DueDate.Format("2006-01-02")
	} else {
		data.DueDate = "-"
	}
	for _, item := range order.Items {
		data.Items = append(data.Items, pdf.ReceiptItem{
			Description: item.ProductName,
			Qty:         item.Qty,
			UnitPrice:   formatAmount(item.SellingPrice),
			Amount:      formatAmount(item.Subtotal),
		})
	}

	doc, err := s.pdfProvider.GenerateReceipt(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=receipt-%s.pdf", order.ID))
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc)
}

func stringOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
