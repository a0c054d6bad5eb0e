package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart file uploads.
const maxUploadBytes = 10 << 20

var allowedUploadMimes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var (
	errMissingFile     = errors.New("file is required")
	errFileTooLarge    = errors.New("file exceeds the 10MB limit")
	errUnsupportedMime = errors.New("unsupported file type, expected pdf, jpeg or png")
)

// billingHandler handles billing lifecycle requests.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: bs}
}

// RegisterBillingRoutes registers the billing routes. Exported so handler
// tests can mount them on a bare router.
func RegisterBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	billing := rg.Group("/billing")
	{
		billing.POST("/requests", h.createRequest)
		billing.GET("/requests", h.listRequests)
		billing.GET("/requests/:requestID", h.getRequest)
		billing.PATCH("/requests/:requestID", h.patchRequest)
		billing.GET("/requests/:requestID/invoice", h.getInvoice)

		billing.POST("/allocations", h.createAllocation)
		billing.POST("/payments", h.createPayment)

		billing.GET("/projects/:projectID/allocations", h.listAllocations)
		billing.GET("/projects/:projectID/ledger", h.getLedger)
		billing.POST("/projects/:projectID/receipts", h.createReceipt)
	}
}

// createRequest godoc
// @Summary Open a billing request
// @Description Creates a billing request in PENDING state.
// @Tags billing
// @Accept json
// @Produce json
// @Param request body dto.CreateBillingRequestRequest true "Request details"
// @Success 201 {object} dto.BillingRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing/requests [post]
func (h *billingHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	created, err := h.billingService.CreateRequest(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create billing request", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create billing request")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillingRequestResponse(created))
}

func (h *billingHandler) listRequests(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid query parameters: " + err.Error()))
		return
	}

	requests, err := h.billingService.ListRequests(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list billing requests")
		return
	}

	out := make([]dto.BillingRequestResponse, len(requests))
	for i := range requests {
		out[i] = dto.ToBillingRequestResponse(&requests[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *billingHandler) getRequest(c *gin.Context) {
	request, err := h.billingService.GetRequest(c.Request.Context(), c.Param("requestID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve billing request")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillingRequestResponse(request))
}

// patchRequest godoc
// @Summary Update a billing request
// @Description Updates mutable fields, or registers the final invoice when the body carries one.
// @Tags billing
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param request body dto.PatchBillingRequestRequest true "Fields to update"
// @Success 200 {object} dto.BillingRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing/requests/{requestID} [patch]
func (h *billingHandler) patchRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PatchBillingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	updated, err := h.billingService.PatchRequest(c.Request.Context(), c.Param("requestID"), req, updaterUserID)
	if err != nil {
		logger.Warn("Failed to patch billing request",
			slog.String("request_id", c.Param("requestID")),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to update billing request")
		return
	}

	c.JSON(http.StatusOK, dto.ToBillingRequestResponse(updated))
}

func (h *billingHandler) getInvoice(c *gin.Context) {
	invoice, err := h.billingService.GetInvoiceByRequest(c.Request.Context(), c.Param("requestID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// createAllocation godoc
// @Summary Earmark project funds
// @Description Creates an allocation; rejected when it exceeds the project's available funds.
// @Tags billing
// @Accept json
// @Produce json
// @Param allocation body dto.CreateAllocationRequest true "Allocation details"
// @Success 201 {object} dto.AllocationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing/allocations [post]
func (h *billingHandler) createAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	alloc, err := h.billingService.CreateAllocation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create allocation",
			slog.String("project_id", req.ProjectID),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to create allocation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAllocationResponse(alloc))
}

func (h *billingHandler) listAllocations(c *gin.Context) {
	allocations, err := h.billingService.ListAllocations(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err, "Failed to list allocations")
		return
	}

	out := make([]dto.AllocationResponse, len(allocations))
	for i := range allocations {
		out[i] = dto.ToAllocationResponse(&allocations[i])
	}
	c.JSON(http.StatusOK, out)
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment and marks the parent request PAID in one transaction.
// @Tags billing
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing/payments [post]
func (h *billingHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("Invalid request format: " + err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	payment, err := h.billingService.CreatePayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to create payment",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *billingHandler) getLedger(c *gin.Context) {
	rows, err := h.billingService.GetProgramLedger(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.LedgerResponse{ProjectID: c.Param("projectID"), Rows: rows})
}

// createReceipt godoc
// @Summary Upload a payment receipt
// @Description Stores a proof-of-payment file for a project.
// @Tags billing
// @Accept multipart/form-data
// @Produce json
// @Param projectID path string true "Project ID"
// @Param file formData file true "Receipt file (pdf, jpeg or png, max 10MB)"
// @Param paymentID formData string false "Related payment ID"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing/projects/{projectID}/receipts [post]
func (h *billingHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Unauthorized"))
		return
	}

	upload, err := readUpload(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err.Error()))
		return
	}

	receipt, err := h.billingService.CreateReceipt(c.Request.Context(), c.Param("projectID"), c.PostForm("paymentID"), *upload, creatorUserID)
	if err != nil {
		logger.Error("Failed to store receipt",
			slog.String("project_id", c.Param("projectID")),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to store receipt")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// readUpload pulls a multipart file from the request, enforcing the size cap
// and the MIME whitelist.
func readUpload(c *gin.Context, field string) (*dto.FileUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, errMissingFile
	}
	if fileHeader.Size > maxUploadBytes {
		return nil, errFileTooLarge
	}

	mime := fileHeader.Header.Get("Content-Type")
	if !allowedUploadMimes[mime] {
		return nil, errUnsupportedMime
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return nil, err
	}

	return &dto.FileUpload{
		Filename: fileHeader.Filename,
		Mime:     mime,
		Size:     fileHeader.Size,
		Content:  content,
	}, nil
}
