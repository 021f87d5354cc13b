package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "sifted_session"
	cartIDKey   = "cart_id"
)

var sessionStore *sessions.CookieStore

func initSessionStore() *sessions.CookieStore {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "sifted_dev_secret"
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // true behind TLS in production
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CartSession gives every visitor a stable anonymous cart id in a cookie
// session. Shopping needs no login; the id is the only identity a customer
// ever has.
func CartSession() gin.HandlerFunc {
	if sessionStore == nil {
		sessionStore = initSessionStore()
	}

	return func(c *gin.Context) {
		session, _ := sessionStore.Get(c.Request, sessionName)

		cartID, ok := session.Values[cartIDKey].(string)
		if !ok || cartID == "" {
			cartID = uuid.NewString()
			session.Values[cartIDKey] = cartID
			if err := session.Save(c.Request, c.Writer); err != nil {
				// The visitor still gets a working (single-request) cart.
				c.Set(cartIDKey, cartID)
				c.Next()
				return
			}
		}

		c.Set(cartIDKey, cartID)
		c.Next()
	}
}

// CartID returns the cart id placed on the context by CartSession.
func CartID(c *gin.Context) string {
	return c.GetString(cartIDKey)
}
