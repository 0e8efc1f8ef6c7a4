package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/directorio-admin/internal/domain"
)

// TokenSource entrega el token de sesión opaco que el facade adjunta en cada
// petición. Lo implementa el store de sesión; escribe solo login/logout.
type TokenSource interface {
	Token() string
}

// Client facade del servicio remoto de directorio. Una operación por endpoint,
// mapeo directo request/response: sin retry, sin cache, sin batching.
// Los errores se pasan hacia arriba sin interpretarlos; el store que llama
// decide qué registrar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Config del cliente del directorio.
type Config struct {
	BaseURL string        // ej. http://localhost:9000/api
	Timeout time.Duration // timeout del transporte (0 = 15s)
}

// NewClient construye el facade. tokens puede ser nil para endpoints públicos.
func NewClient(cfg Config, tokens TokenSource) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// do ejecuta una petición JSON contra el servicio remoto.
// out puede ser nil si la respuesta no interesa.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: serializar cuerpo: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: construir petición: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if t := c.tokens.Token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("respuesta ilegible: %w", err)}
	}
	return nil
}

// doList ejecuta un GET de listado y normaliza la forma de la respuesta:
// los endpoints pueden devolver un array desnudo o un envelope {results: [...]}.
// Siempre se desenvuelve aquí, nunca más arriba.
func doList[T any](c *Client, ctx context.Context, op, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	items, err := unwrapList(raw)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	var out []T
	if err := json.Unmarshal(items, &out); err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	return out, nil
}

// unwrapList acepta array desnudo o envelope {results: [...]}.
func unwrapList(data []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}
	var env struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("forma de listado no reconocida: %w", err)
	}
	if env.Results == nil {
		return nil, fmt.Errorf("forma de listado no reconocida: sin campo results")
	}
	return env.Results, nil
}

// decodeError interpreta los tres cuerpos de error del servicio:
// {error: string}, {detail: string} o un mapa campo→[mensajes].
func decodeError(status int, body []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return &domain.APIError{Status: status, Message: http.StatusText(status)}
	}
	if msg, ok := rawString(raw, "error"); ok {
		return &domain.APIError{Status: status, Message: msg}
	}
	if msg, ok := rawString(raw, "detail"); ok {
		return &domain.APIError{Status: status, Message: msg}
	}

	fields := make(map[string][]string)
	for k, v := range raw {
		var msgs []string
		if err := json.Unmarshal(v, &msgs); err == nil {
			fields[k] = msgs
			continue
		}
		var single string
		if err := json.Unmarshal(v, &single); err == nil {
			fields[k] = []string{single}
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return &domain.APIError{Status: status, Message: http.StatusText(status)}
}

func rawString(raw map[string]json.RawMessage, key string) (string, bool) {
	v, ok := raw[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}
