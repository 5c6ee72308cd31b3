package handler

import "net/http"

// MethodOverride rewrites POST requests that carry a _method form field set
// to PUT or DELETE, so HTML form submissions reach those routes. It must wrap
// the router, since the method has to change before route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := r.FormValue("_method"); m == http.MethodPut || m == http.MethodDelete {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
