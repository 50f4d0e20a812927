package domain

import (
	"testing"

	"drherbs-api/internal/core/money"
	cartdomain "drherbs-api/internal/features/cart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() CheckoutForm {
	return CheckoutForm{
		CustomerName:    "Ayesha Khan",
		CustomerEmail:   "ayesha@example.com",
		CustomerPhone:   "03001234567",
		ShippingAddress: "12 Garden Road",
		City:            "Lahore",
		PostalCode:      "54000",
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled"} {
		status, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), status)
	}

	_, err := ParseStatus("refunded")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestCheckoutForm_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validForm().Validate())
	})

	t.Run("EmailOptional", func(t *testing.T) {
		form := validForm()
		form.CustomerEmail = ""
		assert.NoError(t, form.Validate())
	})

	t.Run("MissingFields", func(t *testing.T) {
		form := validForm()
		form.CustomerName = "  "
		form.City = ""

		err := form.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer_name")
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("BadEmail", func(t *testing.T) {
		form := validForm()
		form.CustomerEmail = "not-an-email"
		assert.Error(t, form.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	items := cartdomain.Cart{
		{ProductID: "p1", Name: "Chamomile Tea", UnitPrice: money.FromDollars(19.99), Quantity: 2},
	}
	totals := cartdomain.ComputeTotals(items, cartdomain.DefaultShippingPolicy())

	form := validForm()
	form.Notes = "  ring the bell  "

	order := NewOrder(form, items, totals)

	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, PaymentCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, "ring the bell", order.Notes)
	assert.Equal(t, items, order.Items)
	assert.Equal(t, totals.Subtotal, order.Subtotal)
	assert.Equal(t, totals.ShippingCost, order.ShippingCost)
	assert.Equal(t, totals.Total, order.Total)
	assert.Empty(t, order.ID)
}
