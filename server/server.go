package server

import (
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/hands"
	"github.com/lazharichir/blackjack/server/connection"
	serverevents "github.com/lazharichir/blackjack/server/events"
)

const pingPeriod = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // spectators are read-only
	},
}

// Server plays rounds over HTTP and streams their events to websocket spectators
type Server struct {
	store      *events.InMemoryEventStore
	connMgr    *connection.Manager
	dispatcher *serverevents.Dispatcher
	rules      game.Rules
	dealerName string
	playerName string

	rngMu sync.Mutex
	rng   *rand.Rand
}

// ParticipantResponse represents one side of a round in API responses
type ParticipantResponse struct {
	Seat      string       `json:"seat"`
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	Cards     []cards.Card `json:"cards"`
	Score     int          `json:"score"`
	Soft      bool         `json:"soft"`
	Bust      bool         `json:"bust"`
	Blackjack bool         `json:"blackjack"`
}

// RoundResponse represents a round in API responses
type RoundResponse struct {
	ID       string              `json:"id"`
	Phase    string              `json:"phase"`
	ShoeSize int                 `json:"shoeSize"`
	Dealer   ParticipantResponse `json:"dealer"`
	Player   ParticipantResponse `json:"player"`
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// NewServer creates a new spectator server
func NewServer(cfg *config.Config) *Server {
	connMgr := connection.NewManager()

	return &Server{
		store:      events.NewInMemoryEventStore(),
		connMgr:    connMgr,
		dispatcher: serverevents.NewDispatcher(connMgr),
		rules:      cfg.Rules(),
		dealerName: cfg.DealerName,
		playerName: cfg.PlayerName,
		rng:        rand.New(rand.NewSource(cfg.RandomSeed())),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/rounds", corsMiddleware(s.handleRounds))
	mux.HandleFunc("/api/rounds/{id}", corsMiddleware(s.handleGetRound))
	return mux
}

// Start begins the server on the specified port
func (s *Server) Start(port string) error {
	go s.connMgr.Start()

	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe("0.0.0.0:"+port, s.Handler())
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	clientID := uuid.NewString()
	log.Printf("New spectator connected: %s with ID: %s", r.RemoteAddr, clientID)

	client := &connection.Client{
		ID:   clientID,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	s.connMgr.Register <- client

	go s.readPump(client)
	go s.writePump(client)
}

// readPump drains incoming frames so close and pong frames are processed.
// Spectators cannot act on a round, so messages are ignored.
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error: %v", err)
			}
			return
		}
	}
}

// writePump sends messages to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Error writing message: %v", err)
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Error sending ping: %v", err)
				return
			}
		}
	}
}

// handleRounds lists rounds on GET and plays a new one on POST
func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.RoundIDs())
	case http.MethodPost:
		s.handlePlayRound(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handlePlayRound(w http.ResponseWriter, _ *http.Request) {
	state, err := s.playRound()
	if err != nil {
		log.Printf("Round failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, newRoundResponse(state))
}

// handleGetRound replays a stored round
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, err := game.RehydrateRound(s.store, r.PathValue("id"))
	if errors.Is(err, game.ErrRoundNotFound) {
		http.Error(w, "Round not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newRoundResponse(state))
}

// playRound prepares a shoe under the RNG lock, then plays the round on this goroutine
func (s *Server) playRound() (*game.RoundState, error) {
	s.rngMu.Lock()
	shoe, err := game.PrepareShoe(s.rules, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return nil, err
	}

	engine := game.NewRoundEngine(s.store, shoe, s.dealerName, s.playerName)
	engine.AddEventHandler(s.dispatcher.HandleEvent)

	if err := engine.Play(); err != nil {
		return nil, err
	}
	return engine.State(), nil
}

func newRoundResponse(state *game.RoundState) RoundResponse {
	return RoundResponse{
		ID:       state.ID,
		Phase:    string(state.Phase),
		ShoeSize: state.ShoeSize,
		Dealer:   newParticipantResponse(state.Dealer),
		Player:   newParticipantResponse(state.Player),
	}
}

func newParticipantResponse(p *domain.Participant) ParticipantResponse {
	eval := hands.Evaluate(p.Cards)
	return ParticipantResponse{
		Seat:      string(p.Seat),
		Name:      p.Name,
		Status:    string(p.Status),
		Cards:     p.Cards,
		Score:     eval.Total,
		Soft:      eval.Soft,
		Bust:      eval.Bust,
		Blackjack: eval.Blackjack,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
