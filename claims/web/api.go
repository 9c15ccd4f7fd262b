package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/nisavid/32health-assmt-claim-process/claims/constants"
	claimserrors "github.com/nisavid/32health-assmt-claim-process/claims/errors"
	"github.com/nisavid/32health-assmt-claim-process/claims/models"
	"github.com/nisavid/32health-assmt-claim-process/claims/service"
	"github.com/nisavid/32health-assmt-claim-process/log"
)

var (
	claimService  service.Service
	healthChecker interface {
		IsDatabaseOK() (string, bool)
	}
)

type errorResponse struct {
	Error string `json:"error"`
}

/*
	swagger:route POST /claims claims createClaims

	Create claims

	Accepts a single claim payload or an array of payloads. Field names are
	normalized to the canonical schema before validation; every item is
	processed even when earlier items fail.
*/
func createClaims(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.API.Error(err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "could not read request body"})
		return
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "request body is required"})
		return
	}

	var (
		payloads []models.RawClaimPayload
		batch    = trimmed[0] == '['
	)
	if batch {
		err = json.Unmarshal(trimmed, &payloads)
	} else {
		var payload models.RawClaimPayload
		err = json.Unmarshal(trimmed, &payload)
		payloads = []models.RawClaimPayload{payload}
	}
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "request body is not valid JSON: " + err.Error()})
		return
	}
	if len(payloads) == 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "request body contains no claims"})
		return
	}

	results, err := claimService.ProcessClaims(r.Context(), payloads)
	if err != nil {
		log.API.Error(err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "failed to process claims"})
		return
	}

	allFailed := true
	items := make([]interface{}, len(results))
	for i, result := range results {
		if len(result.Errors) > 0 {
			items[i] = map[string]interface{}{"errors": result.Errors}
		} else {
			items[i] = result.Claim
			allFailed = false
		}
	}

	if allFailed {
		render.Status(r, http.StatusUnprocessableEntity)
	}
	if batch {
		render.JSON(w, r, items)
	} else {
		render.JSON(w, r, items[0])
	}
}

func getClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := claimService.GetClaims(r.Context())
	if err != nil {
		log.API.Error(err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "failed to retrieve claims"})
		return
	}
	if claims == nil {
		claims = []*models.Claim{}
	}
	render.JSON(w, r, claims)
}

func getClaim(w http.ResponseWriter, r *http.Request) {
	claimID, err := strconv.ParseUint(chi.URLParam(r, "claimID"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "claim id must be a positive integer"})
		return
	}

	claim, err := claimService.GetClaim(r.Context(), uint(claimID))
	if err != nil {
		if _, ok := err.(*claimserrors.ClaimNotFoundError); ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, errorResponse{Error: err.Error()})
			return
		}
		log.API.Error(err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "failed to retrieve claim"})
		return
	}
	render.JSON(w, r, claim)
}

func topProviderNPIs(w http.ResponseWriter, r *http.Request) {
	providers, err := claimService.GetTopProviders(r.Context(), service.DefaultTopProviderLimit)
	if err != nil {
		log.API.Error(err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "failed to compute top providers"})
		return
	}
	if providers == nil {
		providers = []models.ProviderNetFee{}
	}
	render.JSON(w, r, providers)
}

func getVersion(w http.ResponseWriter, r *http.Request) {
	respMap := make(map[string]string)
	respMap["version"] = constants.Version
	render.JSON(w, r, respMap)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	m := make(map[string]string)
	status := http.StatusOK

	if _, ok := healthChecker.IsDatabaseOK(); ok {
		m["database"] = "ok"
	} else {
		m["database"] = "error"
		status = http.StatusBadGateway
	}

	respJSON, err := json.Marshal(m)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(respJSON); err != nil {
		log.API.Error(err)
	}
}
