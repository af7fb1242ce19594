// Package predict talks to the housing demand prediction service.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrInvalidRequest is wrapped when a request fails local validation.
	ErrInvalidRequest = errors.New("predict: invalid request")
	// ErrNoMatches is returned when the service finds nothing.
	ErrNoMatches = errors.New("predict: no matching properties")
)

// Request mirrors the service's input. Gym and Pool are "Yes" or "No".
type Request struct {
	BHK      int    `json:"bhk"`
	Location string `json:"location"`
	RERA     bool   `json:"rera"`
	Gym      string `json:"gym"`
	Pool     string `json:"pool"`
}

// Normalize trims fields and canonicalises yes/no answers.
func (r Request) Normalize() Request {
	r.Location = strings.TrimSpace(r.Location)
	r.Gym = yesNo(r.Gym)
	r.Pool = yesNo(r.Pool)
	return r
}

// Validate checks r before it is sent.
func (r Request) Validate() error {
	if r.BHK < 1 || r.BHK > 5 {
		return fmt.Errorf("%w: bhk must be between 1 and 5, got %d", ErrInvalidRequest, r.BHK)
	}
	if r.Gym != "Yes" && r.Gym != "No" {
		return fmt.Errorf("%w: gym must be Yes or No, got %q", ErrInvalidRequest, r.Gym)
	}
	if r.Pool != "Yes" && r.Pool != "No" {
		return fmt.Errorf("%w: pool must be Yes or No, got %q", ErrInvalidRequest, r.Pool)
	}
	return nil
}

func yesNo(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return "Yes"
	case "no", "n":
		return "No"
	}
	return strings.TrimSpace(s)
}

// Field holds a scalar the service may send as a string, number or bool.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Field(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Field(strconv.FormatBool(b))
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	return fmt.Errorf("predict: unsupported field value %s", data)
}

// Yes interprets the field as a flag.
func (f Field) Yes() bool {
	switch strings.ToLower(string(f)) {
	case "yes", "1", "true":
		return true
	}
	return false
}

// Match is one property returned by the service.
type Match struct {
	SocietyName   Field `json:"Society Name"`
	Location      Field `json:"Location"`
	Price         Field `json:"Price"`
	BHK           Field `json:"BHK"`
	Gym           Field `json:"Gym Available"`
	Pool          Field `json:"Swimming Pool Available"`
	StarRating    Field `json:"Star Rating"`
	EstimatedRent Field `json:"Estimated Rent"`
}

// Rating formats the star rating to one decimal.
func (m Match) Rating() string {
	v, err := strconv.ParseFloat(string(m.StarRating), 64)
	if err != nil {
		return string(m.StarRating)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

type response struct {
	Properties []Match `json:"properties"`
	Error      string  `json:"error"`
}

// Client calls the prediction endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// NewClient builds a client for the service rooted at endpoint.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/") + "/predict",
		http:     &http.Client{Timeout: timeout},
		log:      logger.Named("predict"),
	}
}

// Predict sends req and returns the matching properties.
func (c *Client) Predict(ctx context.Context, req Request) ([]Match, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn("request failed", zap.String("url", c.endpoint), zap.Error(err))
		return nil, fmt.Errorf("post %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()
	c.log.Debug("response", zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("predict: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, out.Error)
	}
	if len(out.Properties) == 0 {
		return nil, ErrNoMatches
	}
	return out.Properties, nil
}
