package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicContestRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/contests", handler.ListContests)
	mux.HandleFunc("GET /v1/contests/{contestID}", handler.GetContest)
	mux.HandleFunc("GET /v1/contests/{contestID}/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/contests/{contestID}/prizes", handler.GetContestPrizes)
	mux.HandleFunc("GET /v1/contests/{contestID}/players/{playerID}/ownership", handler.GetPlayerOwnership)
}

func registerAuthorizedRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/contests/{contestID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/contests/{contestID}/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.EditTeam)))
	mux.Handle("GET /v1/contests/{contestID}/teams/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyTeam)))
}

func registerInternalScoringRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/events/match", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ApplyMatchEvent)))
	mux.Handle("POST /v1/internal/contests/{contestID}/settle", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SettleContest)))
	mux.Handle("POST /v1/internal/contests/{contestID}/resettle", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ResettleContest)))
}
