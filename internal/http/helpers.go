package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spendwise/internal/core"
)

const sessionCookieName = "spendwise_session"

// sessionToken pulls the session token from the cookie, falling back to
// a bearer Authorization header for non-browser clients.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// parseDateRange reads start/end query parameters (YYYY-MM-DD,
// inclusive), defaulting to the current month when both are absent.
func parseDateRange(r *http.Request) (core.DateRange, error) {
	startStr := strings.TrimSpace(r.URL.Query().Get("start"))
	endStr := strings.TrimSpace(r.URL.Query().Get("end"))

	if startStr == "" && endStr == "" {
		return core.CurrentMonth(), nil
	}

	month := core.CurrentMonth()
	start, end := month.Start, month.End
	var err error
	if startStr != "" {
		if start, err = core.ParseDate(startStr); err != nil {
			return core.DateRange{}, fmt.Errorf("start: %w", err)
		}
	}
	if endStr != "" {
		if end, err = core.ParseDate(endStr); err != nil {
			return core.DateRange{}, fmt.Errorf("end: %w", err)
		}
	}
	return core.NewDateRange(start, end)
}

// parseExpenseFilter reads the optional listing filters: start, end,
// category, limit.
func parseExpenseFilter(r *http.Request) (core.ExpenseFilter, error) {
	var filter core.ExpenseFilter
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("start")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return core.ExpenseFilter{}, fmt.Errorf("start: %w", err)
		}
		filter.Start = &d
	}
	if v := strings.TrimSpace(q.Get("end")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return core.ExpenseFilter{}, fmt.Errorf("end: %w", err)
		}
		filter.End = &d
	}
	if v := strings.TrimSpace(q.Get("category")); v != "" {
		category := core.Category(v)
		if !category.Valid() {
			return core.ExpenseFilter{}, core.ErrInvalidCategory
		}
		filter.Category = category
	}
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return core.ExpenseFilter{}, fmt.Errorf("invalid limit %q", v)
		}
		filter.Limit = limit
	}
	return filter, nil
}

// trustedProxies defines networks that are trusted to set forwarding headers.
var trustedProxies = []*net.IPNet{
	parsecidr("127.0.0.0/8"),    // localhost
	parsecidr("10.0.0.0/8"),     // private networks
	parsecidr("172.16.0.0/12"),  // private networks
	parsecidr("192.168.0.0/16"), // private networks
}

func parsecidr(cidr string) *net.IPNet {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(fmt.Sprintf("failed to parse trusted proxy CIDR %s: %v", cidr, err))
	}
	return network
}

func isTrustedProxy(ip net.IP) bool {
	for _, network := range trustedProxies {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// extractClientIP extracts the real client IP, trusting forwarding
// headers only from private/proxy networks.
func extractClientIP(r *http.Request) string {
	directIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		directIP = r.RemoteAddr
	}

	parsedDirectIP := net.ParseIP(directIP)
	if parsedDirectIP == nil {
		return directIP
	}

	if isTrustedProxy(parsedDirectIP) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			clientIP := strings.TrimSpace(strings.Split(xff, ",")[0])
			if net.ParseIP(clientIP) != nil {
				return clientIP
			}
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			if net.ParseIP(xri) != nil {
				return xri
			}
		}
	}

	return directIP
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
