package main

import (
	"fmt"
	"net/http"

	"github.com/km-arc/rule-validator/app"
	"github.com/km-arc/rule-validator/engine"
	gohttp "github.com/km-arc/rule-validator/http"
)

func main() {
	application := app.New()
	routes(application)
	application.Run()
}

// routes wires the API surface onto the application router.
func routes(application *app.Application) {
	r := application.Router()
	cfg := application.Config()
	eng := application.Engine()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		res.Success("My Rule-Validation API", map[string]any{
			"name":    cfg.Profile.Name,
			"github":  cfg.Profile.Github,
			"email":   cfg.Profile.Email,
			"mobile":  cfg.Profile.Mobile,
			"twitter": cfg.Profile.Twitter,
		})
	})

	r.Post("/validate-rule", validateRule(eng))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).NotFound("route not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).MethodNotAllowed()
	})
}

// validateRule evaluates a single {rule, data} pair and maps the engine's
// outcome onto the response envelope.
func validateRule(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := gohttp.NewRequest(r)
		res := gohttp.NewResponse(w)

		payload, err := req.BindAny()
		if err != nil {
			// The body never decoded, so the engine has nothing to inspect.
			res.Error(http.StatusBadRequest, engine.MsgInvalidPayload)
			return
		}

		out := eng.Evaluate(payload)
		if out.Aborted() {
			res.Error(http.StatusBadRequest, out.Message)
			return
		}

		data := map[string]any{"validation": out.Result}
		if out.Result.Error {
			res.Fail(fmt.Sprintf("field %s failed validation.", out.Result.Field), data)
			return
		}
		res.Success(fmt.Sprintf("field %s successfully validated.", out.Result.Field), data)
	}
}
