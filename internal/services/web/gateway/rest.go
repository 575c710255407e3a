package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/meganhq/megan-web/internal/platform/timeouts"
	apperrors "github.com/meganhq/megan-web/internal/services/web/platform/errors"
)

// Client calls the account service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a REST gateway against the provided base URL.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("account service base url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return "", apperrors.EK(apperrors.KindUnknown, "error.no_access_token", "login response carried no access token")
	}
	return out.AccessToken, nil
}

// Me loads the signed-in user's profile.
func (c *Client) Me(ctx context.Context, accessToken string) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/me", accessToken, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Register creates an unconfirmed account and sends the confirmation email.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/pre-register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
}

// ConfirmEmail finalizes registration with an email token.
func (c *Client) ConfirmEmail(ctx context.Context, token string) error {
	path := "/auth/confirm?token=" + url.QueryEscape(token)
	return c.do(ctx, http.MethodGet, path, "", nil, nil)
}

// ResendConfirmation re-sends the confirmation email.
func (c *Client) ResendConfirmation(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/resend", "", map[string]string{
		"email": email,
	}, nil)
}

// ForgotPassword sends a password change link to an email address.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/user/pre-forgot-password", "", map[string]string{
		"email": email,
	}, nil)
}

// ResetPassword sets a new password using an email token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/user/change-password", "", map[string]string{
		"token":        token,
		"new_password": newPassword,
	}, nil)
}

// ResendPasswordChange re-sends a password change link.
func (c *Client) ResendPasswordChange(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/user/change-password/resend", "", map[string]string{
		"email": email,
	}, nil)
}

// RequestPasswordChange emails a change link to the signed-in user.
func (c *Client) RequestPasswordChange(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/user/pre-change-password", accessToken, nil, nil)
}

// ChangePassword sets a new password for the signed-in user.
func (c *Client) ChangePassword(ctx context.Context, accessToken, currentPassword, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/auth/change-password", accessToken, map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}, nil)
}

// DeleteUser permanently deletes the signed-in user's account.
func (c *Client) DeleteUser(ctx context.Context, accessToken, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "user id is required")
	}
	return c.do(ctx, http.MethodDelete, "/user/delete/"+url.PathEscape(userID), accessToken, nil, nil)
}

// do issues one JSON request and decodes the response into out when the
// call succeeds. Failures come back as typed application errors.
func (c *Client) do(ctx context.Context, method, path, accessToken string, body any, out any) error {
	if c == nil || c.httpClient == nil {
		return errNotConfigured()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrUnreachable
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp.StatusCode, resp.Body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.EK(apperrors.KindUnknown, "error.unexpected", fmt.Sprintf("decode response body: %v", err))
	}
	return nil
}

// errorBody is the JSON error shape the account service returns. Older
// endpoints use "message" where newer ones use "detail".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if detail := strings.TrimSpace(b.Detail); detail != "" {
		return detail
	}
	return strings.TrimSpace(b.Message)
}

// alreadyCompletedMarkers identify idempotent repeats of one-shot email
// actions, in both response languages the account service emits.
var alreadyCompletedMarkers = []string{
	"already exists",
	"already confirmed",
	"уже существует",
	"уже подтвержден",
}

var emailExistsMarkers = []string{
	"email уже используется",
	"email already in use",
	"email already registered",
}

func mapError(status int, body io.Reader) error {
	var parsed errorBody
	_ = json.NewDecoder(body).Decode(&parsed)
	detail := parsed.text()
	lower := strings.ToLower(detail)

	switch status {
	case http.StatusUnauthorized:
		return apperrors.EK(apperrors.KindUnauthorized, "error.invalid_credentials", detail)
	case http.StatusForbidden:
		return apperrors.EK(apperrors.KindForbidden, "error.account_blocked", detail)
	case http.StatusTooManyRequests:
		return apperrors.EK(apperrors.KindRateLimited, "error.too_many_attempts", detail)
	case http.StatusNotFound:
		return apperrors.EK(apperrors.KindNotFound, "error.email_unknown", detail)
	}

	if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
		for _, marker := range alreadyCompletedMarkers {
			if strings.Contains(lower, marker) {
				return ErrAlreadyCompleted
			}
		}
		for _, marker := range emailExistsMarkers {
			if strings.Contains(lower, marker) {
				return apperrors.EK(apperrors.KindInvalidInput, "error.email_exists", detail)
			}
		}
		return apperrors.EK(apperrors.KindInvalidInput, "error.unexpected", detail)
	}

	return apperrors.EK(apperrors.KindUnknown, "error.unexpected", detail)
}

var _ AccountGateway = (*Client)(nil)
