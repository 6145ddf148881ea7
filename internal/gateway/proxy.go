package gateway

import (
    "io"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
)

// Proxy forwards requests to a single backing service.  Routing is a
// static prefix→URL table resolved from configuration; there is no
// discovery or balancing here, the base URL is the service.
type Proxy struct {
    base string
    hc   *http.Client
}

// NewProxy returns a proxy for the service at base with the given
// per-request timeout.
func NewProxy(base string, timeout time.Duration) *Proxy {
    return &Proxy{base: base, hc: &http.Client{Timeout: timeout}}
}

// Handler forwards the request to the backing service, preserving
// method, path, query, headers (including the identity headers the
// gate injected) and body, and streams the response back.
func (p *Proxy) Handler(c echo.Context) error {
    req := c.Request()
    url := p.base + req.URL.RequestURI()

    out, err := http.NewRequestWithContext(req.Context(), req.Method, url, req.Body)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "proxy request failed"})
    }
    out.Header = req.Header.Clone()

    resp, err := p.hc.Do(out)
    if err != nil {
        log.Printf("gateway: proxy to %s failed: %v", url, err)
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream unavailable"})
    }
    defer resp.Body.Close()

    for k, vs := range resp.Header {
        for _, v := range vs {
            c.Response().Header().Add(k, v)
        }
    }
    c.Response().WriteHeader(resp.StatusCode)
    _, err = io.Copy(c.Response(), resp.Body)
    return err
}
