package restapi

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/anyswap/ripple-address-codec/internal/codecapi"
	"github.com/anyswap/ripple-address-codec/log"
	rpcjson "github.com/gorilla/rpc/v2/json2"
)

// RestAPI rest api handlers
type RestAPI struct {
	api *codecapi.API
}

// NewRestAPI creates rest api handlers
func NewRestAPI(api *codecapi.API) *RestAPI {
	return &RestAPI{api: api}
}

// ErrorResponse error response body
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeResponse(w http.ResponseWriter, resp interface{}, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		errResp := &ErrorResponse{Message: err.Error()}
		if rpcErr, ok := err.(*rpcjson.Error); ok {
			errResp.Code = int(rpcErr.Code)
			errResp.Message = rpcErr.Message
		}
		w.WriteHeader(http.StatusBadRequest)
		resp = errResp
	} else {
		w.WriteHeader(http.StatusOK)
	}
	jsonData, err := json.Marshal(resp)
	if err != nil {
		log.Warn("marshal rest response failed", "err", err)
		return
	}
	_, _ = w.Write(jsonData)
}

// pathVars returns the unescaped route variables, the router matches on the
// encoded path.
func pathVars(r *http.Request) map[string]string {
	vars := pathVars(r)
	for k, v := range vars {
		if unescaped, err := url.PathUnescape(v); err == nil {
			vars[k] = unescaped
		}
	}
	return vars
}

// VersionInfoHandler handler
func (h *RestAPI) VersionInfoHandler(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, codecapi.GetVersionInfo(), nil)
}

// DecodeAccountIDHandler handler
func (h *RestAPI) DecodeAccountIDHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.DecodeAccountID(vars["address"])
	writeResponse(w, res, err)
}

// EncodeAccountIDHandler handler
func (h *RestAPI) EncodeAccountIDHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.EncodeAccountID(vars["accountid"])
	writeResponse(w, res, err)
}

// ValidateAddressHandler handler
func (h *RestAPI) ValidateAddressHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	writeResponse(w, h.api.IsValidAddress(vars["address"]), nil)
}

// DecodeSeedHandler handler
func (h *RestAPI) DecodeSeedHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.DecodeSeed(vars["seed"])
	writeResponse(w, res, err)
}

// EncodeSeedHandler handler, the seed type is the optional 'type' query
func (h *RestAPI) EncodeSeedHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	args := &codecapi.EncodeSeedArgs{
		Entropy: vars["entropy"],
		Type:    r.URL.Query().Get("type"),
	}
	res, err := h.api.EncodeSeed(args)
	writeResponse(w, res, err)
}

// DecodeNodePublicHandler handler
func (h *RestAPI) DecodeNodePublicHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.DecodeNodePublic(vars["nodepublic"])
	writeResponse(w, res, err)
}

// EncodeNodePublicHandler handler
func (h *RestAPI) EncodeNodePublicHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.EncodeNodePublic(vars["pubkey"])
	writeResponse(w, res, err)
}

// EncodeHandler handler
func (h *RestAPI) EncodeHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.Encode(&codecapi.EncodeArgs{Kind: vars["kind"], Payload: vars["payload"]})
	writeResponse(w, res, err)
}

// DecodeHandler handler
func (h *RestAPI) DecodeHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.Decode(&codecapi.DecodeArgs{Kind: vars["kind"], Encoded: vars["encoded"]})
	writeResponse(w, res, err)
}

// IdentifyHandler handler
func (h *RestAPI) IdentifyHandler(w http.ResponseWriter, r *http.Request) {
	vars := pathVars(r)
	res, err := h.api.Identify(vars["encoded"])
	writeResponse(w, res, err)
}
