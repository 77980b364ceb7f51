package ports

import "github.com/go-chi/chi/v5"

type Router = chi.Router
