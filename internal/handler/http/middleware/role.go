package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/auth"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleAdmin)
}

// RequireManagement requires the admin or hr role.
func RequireManagement(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleAdmin, employee.RoleHR)
}

func requireRoles(next http.Handler, allowed ...employee.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		role := employee.Role(roleStr)
		for _, candidate := range allowed {
			if role == candidate {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.HandleError(w, auth.ErrForbidden)
	})
}
