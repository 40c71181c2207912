package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/infrastructure/cache"
	"github.com/tradesift-io/tradesift/internal/shared/authorization"
	"github.com/tradesift-io/tradesift/internal/shared/constants"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

// CustomerLoader resolves the authenticated customer behind a request
// and stores the aggregate in the context. Lookups go through the
// subscription cache first; the quota itself is only advisory here
// because the storage layer enforces it atomically on consumption.
type CustomerLoader struct {
	customers customer.Repository
	cache     cache.CustomerSubscriptionCache
	logger    logger.Interface
}

func NewCustomerLoader(customers customer.Repository, cache cache.CustomerSubscriptionCache, logger logger.Interface) *CustomerLoader {
	return &CustomerLoader{
		customers: customers,
		cache:     cache,
		logger:    logger,
	}
}

// Load attaches the customer aggregate for customer-typed tokens. A
// token naming a customer that no longer exists is a 404; anonymous and
// admin requests pass through without a customer.
func (m *CustomerLoader) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			c.Next()
			return
		}
		if userType := c.GetString(constants.ContextKeyUserType); userType != authorization.UserTypeCustomer.String() {
			c.Next()
			return
		}

		id, ok := userID.(uint)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token subject")
			c.Abort()
			return
		}

		cust, err := m.resolve(c, id)
		if err != nil {
			m.logger.Errorw("failed to resolve customer", "customer_id", id, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if cust == nil {
			utils.ErrorResponse(c, http.StatusNotFound, "customer not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCustomer, cust)
		c.Next()
	}
}

func (m *CustomerLoader) resolve(c *gin.Context, id uint) (*customer.Customer, error) {
	ctx := c.Request.Context()

	if m.cache != nil {
		cached, err := m.cache.Get(ctx, id)
		if err != nil {
			m.logger.Warnw("customer cache lookup failed", "customer_id", id, "error", err)
		} else if cached != nil {
			return cached.ToEntity()
		}
	}

	cust, err := m.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		if cust == nil {
			if err := m.cache.SetNullMarker(ctx, id); err != nil {
				m.logger.Warnw("failed to set customer null marker", "customer_id", id, "error", err)
			}
		} else if err := m.cache.Set(ctx, cust); err != nil {
			m.logger.Warnw("failed to cache customer snapshot", "customer_id", id, "error", err)
		}
	}
	return cust, nil
}

// CustomerFromContext returns the loaded customer, nil for anonymous
// requests.
func CustomerFromContext(c *gin.Context) *customer.Customer {
	v, exists := c.Get(constants.ContextKeyCustomer)
	if !exists {
		return nil
	}
	cust, ok := v.(*customer.Customer)
	if !ok {
		return nil
	}
	return cust
}
