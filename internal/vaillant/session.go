package vaillant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionState models the session lifecycle explicitly: the session starts
// uninitialized, becomes authenticated on first login, and stays
// authenticated across refreshes. A failed login or refresh drops it back to
// uninitialized so the next EnsureAuthenticated retries from scratch.
type sessionState int

const (
	sessionUninitialized sessionState = iota
	sessionAuthenticated
)

type session struct {
	state        sessionState
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

// EnsureAuthenticated establishes the vendor session on first use and
// refreshes the token once it has expired. Holding c.mu across the whole
// check-then-act means no two logins or refreshes ever run concurrently.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.session.state {
	case sessionUninitialized:
		c.log.Infow("initializing vendor session", "brand", c.cfg.Brand, "country", c.cfg.Country)
		if err := c.login(ctx); err != nil {
			vendorAuthTotal.WithLabelValues("login", "error").Inc()
			return &AuthError{Op: "login", Err: err}
		}
		vendorAuthTotal.WithLabelValues("login", "ok").Inc()
		c.log.Infow("vendor session initialized")
		return nil

	case sessionAuthenticated:
		if c.session.expiresAt.After(time.Now()) {
			return nil
		}
		c.log.Infow("token expired, refreshing")
		if err := c.refresh(ctx); err != nil {
			// Drop the session entirely: the next call performs a full login.
			c.session = session{}
			vendorAuthTotal.WithLabelValues("refresh", "error").Inc()
			return &AuthError{Op: "refresh", Err: err}
		}
		vendorAuthTotal.WithLabelValues("refresh", "ok").Inc()
		c.log.Infow("token refreshed")
		return nil
	}
	return nil
}

// accessToken snapshots the current bearer token for an API call.
func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.accessToken
}

// tokenURL is the OpenID Connect token endpoint of the brand/country realm.
func (c *Client) tokenURL() string {
	realm := c.cfg.Brand + "-" + c.cfg.Country + "-b2c"
	return c.cfg.IdentityURL + "/" + realm + "/protocol/openid-connect/token"
}

// login performs a resource-owner password grant. Caller holds c.mu.
func (c *Client) login(ctx context.Context) error {
	form := url.Values{
		"grant_type": {"password"},
		"client_id":  {clientID},
		"scope":      {"openid"},
		"username":   {c.cfg.User},
		"password":   {c.cfg.Password},
	}
	tok, err := c.requestToken(ctx, form)
	if err != nil {
		return err
	}
	c.applyToken(tok)
	return nil
}

// refresh exchanges the refresh token for a new token pair. Caller holds c.mu.
func (c *Client) refresh(ctx context.Context) error {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {clientID},
		"refresh_token": {c.session.refreshToken},
	}
	tok, err := c.requestToken(ctx, form)
	if err != nil {
		return err
	}
	c.applyToken(tok)
	return nil
}

func (c *Client) requestToken(ctx context.Context, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("identity provider returned an empty access token")
	}
	return &tok, nil
}

// applyToken stores the token pair and computes the expiry instant. The
// access token is a JWT issued to this client, so its exp claim is read
// without signature verification; expires_in is the fallback when the token
// is not parseable. Caller holds c.mu.
func (c *Client) applyToken(tok *tokenResponse) {
	c.session = session{
		state:        sessionAuthenticated,
		accessToken:  tok.AccessToken,
		refreshToken: tok.RefreshToken,
		expiresAt:    tokenExpiry(tok),
	}
}

func tokenExpiry(tok *tokenResponse) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tok.AccessToken, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
}
