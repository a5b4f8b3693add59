package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
	rpcjson "github.com/gorilla/rpc/v2/json2"
	"github.com/pborman/uuid"

	"github.com/anyswap/ripple-address-codec/internal/codecapi"
	"github.com/anyswap/ripple-address-codec/log"
	"github.com/anyswap/ripple-address-codec/params"
	"github.com/anyswap/ripple-address-codec/rpc/restapi"
	"github.com/anyswap/ripple-address-codec/rpc/rpcapi"
)

// RequestIDHeader header carrying the request id
const RequestIDHeader = "X-Request-Id"

// RPCServiceName name of the json rpc service, methods are called as 'codec.Method'
const RPCServiceName = "codec"

// StartAPIServer listens on the configured port and serves the api in the
// background. Stop it with Shutdown on the returned server.
func StartAPIServer(config *params.APIServerConfig, api *codecapi.API) (*http.Server, error) {
	apiPort := config.Port
	if apiPort == 0 {
		apiPort = params.GetAPIPort()
	}
	ln, err := net.Listen("tcp", fmt.Sprintf(":%v", apiPort))
	if err != nil {
		return nil, fmt.Errorf("listen on port %v: %w", apiPort, err)
	}
	log.Info("JSON RPC service listen and serving", "port", apiPort, "allowedOrigins", config.AllowedOrigins, "maxRequestsLimit", config.MaxRequestsLimit)
	return ServeAPI(ln, config, api), nil
}

// ServeAPI serves the api on ln in the background.
func ServeAPI(ln net.Listener, config *params.APIServerConfig, api *codecapi.API) *http.Server {
	svr := &http.Server{
		Addr:         ln.Addr().String(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		Handler:      NewHandler(config, api),
	}
	go func() {
		if err := svr.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Error("Serve error", "err", err)
		}
	}()
	return svr
}

// NewHandler creates the api handler with cors and rate limit
func NewHandler(config *params.APIServerConfig, api *codecapi.API) http.Handler {
	corsOptions := []handlers.CORSOption{
		handlers.AllowedMethods([]string{"GET", "POST"}),
	}
	if len(config.AllowedOrigins) != 0 {
		corsOptions = append(corsOptions,
			handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
			handlers.AllowedOrigins(config.AllowedOrigins),
		)
	}
	var handler http.Handler = initRouter(api)
	if config.MaxRequestsLimit > 0 {
		lmt := tollbooth.NewLimiter(float64(config.MaxRequestsLimit), nil)
		handler = tollbooth.LimitHandler(lmt, handler)
	}
	return handlers.CORS(corsOptions...)(handler)
}

func initRouter(api *codecapi.API) *mux.Router {
	r := mux.NewRouter().UseEncodedPath()
	r.Use(requestIDMiddleware)

	rpcserver := rpc.NewServer()
	rpcserver.RegisterCodec(rpcjson.NewCodec(), "application/json")
	_ = rpcserver.RegisterService(rpcapi.NewRPCAPI(api), RPCServiceName)

	rest := restapi.NewRestAPI(api)
	r.Handle("/rpc", rpcserver)
	r.HandleFunc("/versioninfo", rest.VersionInfoHandler).Methods("GET")
	r.HandleFunc("/address/{address}", rest.DecodeAccountIDHandler).Methods("GET")
	r.HandleFunc("/address/{address}/valid", rest.ValidateAddressHandler).Methods("GET")
	r.HandleFunc("/accountid/{accountid}", rest.EncodeAccountIDHandler).Methods("GET")
	r.HandleFunc("/seed/{seed}", rest.DecodeSeedHandler).Methods("GET")
	r.HandleFunc("/entropy/{entropy}", rest.EncodeSeedHandler).Methods("GET")
	r.HandleFunc("/nodepublic/{nodepublic}", rest.DecodeNodePublicHandler).Methods("GET")
	r.HandleFunc("/pubkey/{pubkey}", rest.EncodeNodePublicHandler).Methods("GET")
	r.HandleFunc("/encode/{kind}/{payload}", rest.EncodeHandler).Methods("GET")
	r.HandleFunc("/decode/{kind}/{encoded}", rest.DecodeHandler).Methods("GET")
	r.HandleFunc("/identify/{encoded}", rest.IdentifyHandler).Methods("GET")

	methodsExcluesGet := []string{"POST", "HEAD", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}

	r.HandleFunc("/versioninfo", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/address/{address}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/address/{address}/valid", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/accountid/{accountid}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/seed/{seed}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/entropy/{entropy}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/nodepublic/{nodepublic}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/pubkey/{pubkey}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/encode/{kind}/{payload}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/decode/{kind}/{encoded}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/identify/{encoded}", warnHandler).Methods(methodsExcluesGet...)

	return r
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New()
		}
		w.Header().Set(RequestIDHeader, reqID)
		log.Trace("receive request", "id", reqID, "method", r.Method, "uri", r.RequestURI, "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func warnHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
	fmt.Fprintf(w, "Forbid '%v' on '%v'\n", r.Method, r.RequestURI)
}
