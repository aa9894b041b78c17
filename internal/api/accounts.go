package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/khata-dev/khata/internal/model"
)

type accountJSON struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

func toAccountJSON(a model.Account) accountJSON {
	return accountJSON{
		ID:      a.ID,
		Name:    a.Name,
		Type:    string(a.Type),
		Balance: a.Balance.StringFixed(2),
	}
}

func toAccountsJSON(accounts []model.Account) []accountJSON {
	out := make([]accountJSON, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountJSON(a))
	}
	return out
}

type openAccountRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (s *Server) handleOpenAccount(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	accountType, err := model.ParseAccountType(req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := s.registry.OpenAccount(req.Name, accountType)
	if err != nil {
		writeError(w, err)
		return
	}
	s.recordActor(r, fmt.Sprintf("opened account %d (%s).", id, req.Name))
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	var (
		accounts []model.Account
		err      error
	)
	if typ := r.URL.Query().Get("type"); typ != "" {
		accountType, perr := model.ParseAccountType(typ)
		if perr != nil {
			writeError(w, perr)
			return
		}
		accounts, err = s.registry.ByType(accountType)
	} else {
		accounts, err = s.registry.All()
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountsJSON(accounts))
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	acct, err := s.registry.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountJSON(acct))
}

func (s *Server) handleCloseAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.registry.CloseAccount(id); err != nil {
		writeError(w, err)
		return
	}
	s.recordActor(r, fmt.Sprintf("closed account %d.", id))
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, model.ValidationError{Reason: "invalid id"}
	}
	return id, nil
}
