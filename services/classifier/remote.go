package clfsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
)

type (
	classifyRequest struct {
		Text string `json:"text"`
	}

	classifyResponse struct {
		Sentiment string `json:"sentiment"`
	}
)

// httpService calls a hosted classification function over plain JSON:
// POST {"text": ...} -> {"sentiment": "Positive"|"Neutral"|"Negative"}.
// The response is untrusted; anything out of set resolves to Neutral.
type httpService struct {
	endpoint string
	client   *http.Client
	logger   core.Logger
}

var _ feedback.Classifier = (*httpService)(nil)

func NewHTTPService(conf *core.Config, logger core.Logger) *httpService {
	return &httpService{
		endpoint: conf.Classifier.Endpoint,
		client:   &http.Client{Timeout: conf.Classifier.Timeout},
		logger:   logger,
	}
}

func (svc *httpService) ClassifyText(ctx context.Context, text string) (feedback.Sentiment, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return "", errors.Wrap(err, "encoding classify request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "building classify request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling classifier function")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("classifier function returned %s", resp.Status)
	}

	var body classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decoding classify response")
	}

	label, ok := feedback.ParseSentiment(body.Sentiment)
	if !ok {
		svc.logger.Warn(fmt.Sprintf("classifier function returned out-of-set label %q", body.Sentiment))
	}
	return label, nil
}
