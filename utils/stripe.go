package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rbtech/config"

	"github.com/go-resty/resty/v2"
)

// CheckoutSessionCompleted is the only Stripe event type this service acts on
const CheckoutSessionCompleted = "checkout.session.completed"

// StripePrice is the subset of the Stripe price object the checkout flow needs.
// Recurring is nil for one-time prices.
type StripePrice struct {
	ID         string `json:"id"`
	Currency   string `json:"currency"`
	UnitAmount int64  `json:"unit_amount"`
	Recurring  *struct {
		Interval string `json:"interval"`
	} `json:"recurring"`
}

// StripeCheckoutSession is a created Checkout Session with its redirect URL
type StripeCheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// StripeEvent is a webhook event envelope
type StripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// StripeSessionObject is the session payload carried by checkout events
type StripeSessionObject struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

// RetrieveStripePrice fetches a price by its reference to decide one-time vs.
// recurring billing
func RetrieveStripePrice(priceID string) (*StripePrice, error) {
	if config.AppConfig.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY not configured")
	}

	client := resty.New()
	resp, err := client.R().
		SetAuthToken(config.AppConfig.StripeSecretKey).
		Get(config.AppConfig.StripeAPIURL + "/prices/" + priceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stripe price lookup failed: %s", stripeErrorMessage(resp.Body()))
	}

	var price StripePrice
	if err := json.Unmarshal(resp.Body(), &price); err != nil {
		return nil, fmt.Errorf("failed to parse price response: %v", err)
	}

	return &price, nil
}

// CreateStripeCheckoutSession creates a Checkout Session scoped to the given
// price, embedding course id, user id and billing mode as metadata. Success and
// cancel URLs point back at the site.
func CreateStripeCheckoutSession(priceID, mode string, courseID, userID uint) (*StripeCheckoutSession, error) {
	if config.AppConfig.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY not configured")
	}

	frontend := config.AppConfig.FrontendURL

	client := resty.New()
	resp, err := client.R().
		SetAuthToken(config.AppConfig.StripeSecretKey).
		SetFormData(map[string]string{
			"mode":                    mode,
			"line_items[0][price]":    priceID,
			"line_items[0][quantity]": "1",
			"success_url":             frontend + "/success?session_id={CHECKOUT_SESSION_ID}",
			"cancel_url":              frontend + "/courses",
			"metadata[course_id]":     strconv.FormatUint(uint64(courseID), 10),
			"metadata[user_id]":       strconv.FormatUint(uint64(userID), 10),
			"metadata[mode]":          mode,
		}).
		Post(config.AppConfig.StripeAPIURL + "/checkout/sessions")
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stripe checkout session failed: %s", stripeErrorMessage(resp.Body()))
	}

	var session StripeCheckoutSession
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %v", err)
	}

	return &session, nil
}

func stripeErrorMessage(body []byte) string {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return string(body)
}

// stripeSignatureTolerance bounds how old a webhook timestamp may be
const stripeSignatureTolerance = 5 * time.Minute

// VerifyStripeSignature checks a Stripe-Signature header (t=...,v1=...) against
// the raw payload and the shared webhook secret
func VerifyStripeSignature(payload []byte, header, secret string) error {
	if header == "" {
		return fmt.Errorf("missing Stripe-Signature header")
	}

	var timestamp int64 = -1
	var signatures [][]byte

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp in signature header")
			}
			timestamp = ts
		case "v1":
			sig, err := hex.DecodeString(kv[1])
			if err != nil {
				continue
			}
			signatures = append(signatures, sig)
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return fmt.Errorf("malformed Stripe-Signature header")
	}

	// Absolute skew: a timestamp too far in either direction is rejected
	skew := time.Since(time.Unix(timestamp, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > stripeSignatureTolerance {
		return fmt.Errorf("webhook timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		if hmac.Equal(expected, sig) {
			return nil
		}
	}

	return fmt.Errorf("no matching signature found")
}

// ConstructStripeEvent verifies the signature and parses the event. Invalid
// signatures return an error with no event.
func ConstructStripeEvent(payload []byte, header, secret string) (*StripeEvent, error) {
	if err := VerifyStripeSignature(payload, header, secret); err != nil {
		return nil, err
	}

	var event StripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %v", err)
	}

	return &event, nil
}

// StripeSignatureHeader builds a valid Stripe-Signature header for a payload
func StripeSignatureHeader(payload []byte, secret string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}
