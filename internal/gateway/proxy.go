package gateway

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Proxy forwards validated requests to the server tier unchanged. The
// gateway owns request-shape validation; the server owns business rules.
type Proxy struct {
	proxy *httputil.ReverseProxy
}

func NewProxy(cfg config.GatewayConfig) (*Proxy, error) {
	target, err := url.Parse(cfg.ServerURL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid server url")
	}

	rp := httputil.NewSingleHostReverseProxy(target)
	rp.Transport = &http.Transport{
		ResponseHeaderTimeout: cfg.ProxyTimeout,
	}
	rp.ErrorHandler = func(w http.ResponseWriter, _ *http.Request, _ error) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"Server tier unavailable"}`))
	}

	return &Proxy{proxy: rp}, nil
}

// Forward hands the request to the server tier. Bodies already consumed by
// validation are restored by the validating handler before calling this.
// ReverseProxy falls back to the writer's CloseNotify when the inbound
// context cannot be canceled, which gin's writer only supports on a real
// server, so always hand it a cancelable context.
func (p *Proxy) Forward(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	p.proxy.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
}
