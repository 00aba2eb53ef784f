package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"
)

var (
	ErrNotConfigured   = errs.New("email integration is not configured")
	ErrUnknownTemplate = errs.New("no template configured for email kind")
	ErrSendFailed      = errs.New("email provider rejected the message")
)

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

type EmailJSClient struct {
	cfg        config.EmailConfig
	httpClient *http.Client
}

func NewEmailJSClient(cfg config.EmailConfig, httpClient *http.Client) *EmailJSClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &EmailJSClient{cfg: cfg, httpClient: httpClient}
}

func (c *EmailJSClient) Send(ctx context.Context, msg commands.EmailMessage) error {
	if !c.cfg.Enabled() {
		return ErrNotConfigured
	}
	templateID, err := c.templateFor(msg.Kind)
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return errs.Wrap(err, "encode email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build email request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "send email")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Mark(fmt.Errorf("emailjs status %d: %s", resp.StatusCode, bytes.TrimSpace(detail)), ErrSendFailed)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *EmailJSClient) templateFor(kind commands.EmailKind) (string, error) {
	var id string
	switch kind {
	case commands.EmailClientConfirmation:
		id = c.cfg.ClientTemplateID
	case commands.EmailAdminAlert:
		id = c.cfg.AdminTemplateID
	}
	if id == "" {
		return "", errs.Wrapf(ErrUnknownTemplate, "kind %q", kind)
	}
	return id, nil
}
