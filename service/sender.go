package service

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/proxy"

	"icinga-mattermost/config"
)

type IWebhookSender interface {
	Send(ctx context.Context, webhookURL string, form url.Values) ([]byte, error)
}

type WebhookSender struct {
	Client *http.Client
}

// NewWebhookSender builds a sender whose client honours the proxy and timeout
// settings in config.
func NewWebhookSender(config *config.Config) (*WebhookSender, error) {
	client := &http.Client{
		Timeout: config.Timeout,
	}

	if config.ProxyURL != "" {
		transport, err := createProxyTransport(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create proxy transport: %w", err)
		}
		client.Transport = transport
	}

	return &WebhookSender{Client: client}, nil
}

// Send posts form to webhookURL once and returns the response body. A non-2xx
// status is reported as an error alongside the body.
func (s *WebhookSender) Send(ctx context.Context, webhookURL string, form url.Values) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return text, fmt.Errorf("webhook returned %s: %s", resp.Status, text)
	}

	return text, nil
}

func createProxyTransport(config *config.Config) (*http.Transport, error) {
	proxyURL, err := url.Parse(config.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL '%s': %w", config.ProxyURL, err)
	}

	if config.ProxyType == "socks5" {
		var auth *proxy.Auth
		if config.ProxyUser != "" && config.ProxyPass != "" {
			auth = &proxy.Auth{
				User:     config.ProxyUser,
				Password: config.ProxyPass,
			}
		}

		dialer, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				if cd, ok := dialer.(proxy.ContextDialer); ok {
					return cd.DialContext(ctx, network, addr)
				}
				return dialer.Dial(network, addr)
			},
		}, nil
	}

	if config.ProxyUser != "" && config.ProxyPass != "" {
		proxyURL.User = url.UserPassword(config.ProxyUser, config.ProxyPass)
	}

	return &http.Transport{
		Proxy: http.ProxyURL(proxyURL),
	}, nil
}
