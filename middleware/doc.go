// Package middleware provides net/http middleware that negotiates the language of a
// request and stores it in the request context.
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
//		p := loadProduct(r.PathValue("id"))
//		if _, err := l10n.LocalizeContext(r.Context(), p, l10n.OneLevel); err != nil {
//			// individual fields failed; the rest of p is localized
//		}
//		json.NewEncoder(w).Encode(p)
//	})
//
//	http.ListenAndServe(":8080", middleware.Language()(mux))
//
// The language is taken from the "lang" query parameter when it names a supported
// language, then from the Accept-Language header matched against the registry, then
// the registry's first supported language.
//
//	middleware.LanguageWithConfig(middleware.LanguageConfig{
//		Registry:           registry,
//		QueryParam:         "locale",
//		SetContentLanguage: true,
//		Skip: func(r *http.Request) bool {
//			return strings.HasPrefix(r.URL.Path, "/static/")
//		},
//	})
package middleware
