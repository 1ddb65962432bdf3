// services/notifier.go
package services

import (
	"strings"
	"sync"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Notifier tells the shop about a dispatched booking. Implementations must
// not block the caller.
type Notifier interface {
	BookingDispatched(shopPhone, message string)
}

type NoopNotifier struct{}

func (NoopNotifier) BookingDispatched(string, string) {}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends a WhatsApp copy of each booking message to the shop
// phone through the Twilio API.
type TwilioNotifier struct {
	api    messageCreator
	from   string
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewTwilioNotifier(accountSid, authToken, fromNumber string, logger *zap.Logger) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return &TwilioNotifier{api: client.Api, from: fromNumber, logger: logger}
}

func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return "whatsapp:" + number
}

func (n *TwilioNotifier) BookingDispatched(shopPhone, message string) {
	if shopPhone == "" {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(whatsappAddress(shopPhone))
		params.SetFrom(whatsappAddress(n.from))
		params.SetBody(message)

		resp, err := n.api.CreateMessage(params)
		switch {
		case err != nil:
			n.logger.Warn("booking notification failed", zap.String("to", shopPhone), zap.Error(err))
		case resp != nil && resp.Sid != nil:
			n.logger.Info("booking notification sent", zap.String("to", shopPhone), zap.String("sid", *resp.Sid))
		default:
			n.logger.Info("booking notification sent, no SID returned", zap.String("to", shopPhone))
		}
	}()
}

// Wait blocks until in-flight notifications finish. Used on shutdown.
func (n *TwilioNotifier) Wait() {
	n.wg.Wait()
}
