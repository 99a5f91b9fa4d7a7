package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Method string

const (
	MethodCard       Method = "card"
	MethodUPI        Method = "upi"
	MethodNetBanking Method = "netbanking"
	MethodWallet     Method = "wallet"
)

func (m Method) DisplayName() string {
	switch m {
	case MethodCard:
		return "Credit/Debit Card"
	case MethodUPI:
		return "UPI"
	case MethodNetBanking:
		return "Net Banking"
	case MethodWallet:
		return "Digital Wallet"
	default:
		return "Payment"
	}
}

type CardDetails struct {
	Number         string `json:"cardNumber"     validate:"required,number,min=16,max=19"`
	ExpiryMonth    string `json:"expiryMonth"    validate:"required"`
	ExpiryYear     string `json:"expiryYear"     validate:"required"`
	CVV            string `json:"cvv"            validate:"required,number,min=3,max=4"`
	CardholderName string `json:"cardholderName" validate:"required"`
}

type UPIDetails struct {
	ID string `json:"upiId" validate:"required,contains=@"`
}

type NetBankingDetails struct {
	Bank string `json:"bank" validate:"required"`
}

type WalletDetails struct {
	WalletType string `json:"walletType" validate:"required"`
}

// Request is a charge for one booking. Only the details matching Method
// are inspected.
type Request struct {
	Method     Method
	Amount     int
	Card       *CardDetails
	UPI        *UPIDetails
	NetBanking *NetBankingDetails
	Wallet     *WalletDetails
}

// Gateway simulates a payment provider: it validates the method details,
// waits for the configured processing delay and always succeeds.
type Gateway struct {
	delay    time.Duration
	validate *validator.Validate
	logger   logger.Logger
}

func NewGateway(delay time.Duration, log logger.Logger) *Gateway {
	return &Gateway{
		delay:    delay,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   log,
	}
}

func (g *Gateway) Charge(ctx context.Context, req Request) (*domain.Payment, error) {
	if err := g.check(req); err != nil {
		return nil, err
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		g.logger.Warn("payment aborted",
			logger.String("method", string(req.Method)),
			logger.String("error", ctx.Err().Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, ctx.Err())
	case <-timer.C:
	}

	p := &domain.Payment{
		ID:        NewPaymentID(),
		Method:    string(req.Method),
		Amount:    req.Amount,
		Status:    domain.PaymentCompleted,
		CreatedAt: time.Now().UTC(),
	}

	g.logger.Info("payment completed",
		logger.String("payment_id", p.ID),
		logger.String("method", p.Method),
		logger.Int("amount", p.Amount),
	)

	return p, nil
}

func (g *Gateway) check(req Request) error {
	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}

	var details any
	switch req.Method {
	case MethodCard:
		if req.Card != nil {
			card := *req.Card
			card.Number = strings.ReplaceAll(card.Number, " ", "")
			details = &card
		}
	case MethodUPI:
		if req.UPI != nil {
			details = req.UPI
		}
	case MethodNetBanking:
		if req.NetBanking != nil {
			details = req.NetBanking
		}
	case MethodWallet:
		if req.Wallet != nil {
			details = req.Wallet
		}
	case "":
		return fmt.Errorf("%w: please select a payment method", domain.ErrValidation)
	default:
		return fmt.Errorf("%w: unsupported payment method %q", domain.ErrValidation, req.Method)
	}

	if details == nil {
		return fmt.Errorf("%w: %s details are required", domain.ErrValidation, req.Method.DisplayName())
	}

	if err := g.validate.Struct(details); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrValidation, fieldMessage(verrs[0]))
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Number":
		return "valid card number required"
	case "ExpiryMonth", "ExpiryYear":
		return "expiry date required"
	case "CVV":
		return "valid CVV required"
	case "CardholderName":
		return "cardholder name required"
	case "ID":
		return "valid UPI ID required"
	case "Bank":
		return "please select a bank"
	case "WalletType":
		return "please select a wallet"
	default:
		return fe.Error()
	}
}

func NewPaymentID() string {
	return "PAY_" + shortID()
}

func NewBookingID() string {
	return "CND" + shortID()
}

func shortID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
}
