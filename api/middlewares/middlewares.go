package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const PlayerIDHeader = "X-Player-ID"

// PlayerIdentityMiddleware copies the caller's player id into the context so
// games can be attributed. It does not authenticate.
func PlayerIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(PlayerIDHeader)); id != "" {
			if len(id) > 64 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "player id too long"})
				return
			}
			c.Set("playerID", id)
		}
		c.Next()
	}
}

func allowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// CORSMiddleware lets the web client call the API from the allowed origins.
func CORSMiddleware() gin.HandlerFunc {
	origins := allowedOrigins()
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		for _, o := range origins {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", o)
				break
			}
		}

		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept, Origin, Cache-Control, X-Requested-With, "+PlayerIDHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
