// Package http exposes the order-management use cases over an echo HTTP API.
// Request and response schemas are explicit Go structs; domain errors map to
// statuses in one place so no handler can leak a partial success.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/application/usecases/commands"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/application/usecases/queries"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler

	quoteRateHandler  queries.QuoteRateQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	quoteRateHandler queries.QuoteRateQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		quoteRateHandler:   quoteRateHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes wires the API routes. The rate table is public; everything
// touching orders requires an authenticated account.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *Authenticator) {
	api := e.Group("/api/v1")
	api.GET("/rates", s.GetRates)

	orders := api.Group("/orders", auth.Middleware())
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
}

// GetRates handles GET /api/v1/rates - quotes shipping prices.
// Without a distance parameter it returns the full ordered rate table;
// with one it returns the tiers covering that distance.
func (s *Server) GetRates(ctx echo.Context) error {
	var query queries.QuoteRateQuery

	if raw := ctx.QueryParam("distance"); raw != "" {
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Distance must be a number",
			})
		}

		query, err = queries.NewQuoteRateQueryForDistance(distance)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Distance must be a finite number",
			})
		}
	} else {
		query = queries.NewQuoteRateQuery()
	}

	tiers, err := s.quoteRateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve rates",
		})
	}

	response := make([]RateTierResponse, len(tiers))
	for i, tier := range tiers {
		response[i] = RateTierResponse{
			ID:         tier.ID.Int64(),
			LowerLimit: tier.LowerLimit,
			UpperLimit: tier.UpperLimit,
			Price:      tier.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates an order with both
// parties and all line items in one transaction.
func (s *Server) CreateOrder(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	distance, err := kernel.NewDistance(request.EstimateDistance)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid estimate distance: " + err.Error(),
		})
	}

	shippingPrice, err := decimal.NewFromString(string(request.ShippingPrice))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Shipping price must be a number",
		})
	}

	products := make([]commands.ProductInput, len(request.Products))
	for i, p := range request.Products {
		products[i] = commands.ProductInput{Name: p.Name, RawPrice: string(p.Price)}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.ID(claims.AccountID),
		partyFieldsFromContact(request.Consignor),
		partyFieldsFromContact(request.Consignee),
		request.PaymentMethod,
		request.ProductPreview,
		request.Note,
		distance,
		shippingPrice,
		products,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderCreationError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:      result.OrderID.Int64(),
		TrackingCode: result.TrackingCode.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// parties and line items.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.ParseID(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Order id must be a positive integer",
		})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Order id must be a positive integer",
		})
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	products := make([]LineItemDetails, len(result.LineItems))
	for i, item := range result.LineItems {
		products[i] = LineItemDetails{
			ID:    item.ID.Int64(),
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetails{
		ID:               result.ID.Int64(),
		TrackingCode:     result.TrackingCode.String(),
		PaymentMethod:    result.PaymentMethod,
		ProductPreview:   result.ProductPreview,
		Note:             result.Note,
		EstimateDistance: result.EstimateDistance,
		ShippingPrice:    result.ShippingPrice.String(),
		DateCreated:      result.DateCreated,
		Consignor:        partyDetailsFromResponse(result.Sender),
		Consignee:        partyDetailsFromResponse(result.Receiver),
		Products:         products,
	})
}

// ListOrders handles GET /api/v1/orders - lists orders newest first.
// Admin accounts see every order; other accounts only orders they sent.
func (s *Server) ListOrders(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	var query queries.ListOrdersQuery
	if claims.Admin {
		query = queries.NewListOrdersQuery()
	} else {
		var err error
		query, err = queries.NewListOrdersQueryForOwner(kernel.ID(claims.AccountID))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid account",
			})
		}
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummary, len(orders))
	for i, order := range orders {
		response[i] = OrderSummary{
			ID:               order.ID.Int64(),
			TrackingCode:     order.TrackingCode.String(),
			PaymentMethod:    order.PaymentMethod,
			ProductPreview:   order.ProductPreview,
			EstimateDistance: order.EstimateDistance,
			ShippingPrice:    order.ShippingPrice.String(),
			DateCreated:      order.DateCreated,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderCreationError maps order workflow failures to HTTP responses.
// Validation failures report both parties' field errors together; everything
// else is a plain 400 or 500 with no partial-success leakage.
func (s *Server) orderCreationError(ctx echo.Context, err error) error {
	var partyErr *commands.PartyValidationError
	if errors.As(err, &partyErr) {
		return ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Code:      http.StatusBadRequest,
			Message:   "Order parties are invalid",
			Consignor: partyErr.Consignor,
			Consignee: partyErr.Consignee,
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Failed to create order",
	})
}

func partyFieldsFromContact(contact PartyContact) party.Fields {
	return party.Fields{
		Name:        contact.Name,
		Phone:       contact.Phone,
		AddressLine: contact.AddressLine,
		City:        contact.City,
		PostalCode:  contact.PostalCode,
	}
}

func partyDetailsFromResponse(p queries.PartyResponse) PartyDetails {
	return PartyDetails{
		ID:          p.ID.Int64(),
		Role:        p.Role,
		Name:        p.Name,
		Phone:       p.Phone,
		AddressLine: p.AddressLine,
		City:        p.City,
		PostalCode:  p.PostalCode,
	}
}
