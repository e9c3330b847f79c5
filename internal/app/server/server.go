package server

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gorilla/websocket"
	awsAuth "github.com/klubbhq/klubb/internal/aws/auth"
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

type server struct {
	address  string
	upgrader websocket.Upgrader

	config  Config
	clients sync.Map
	issuer  string

	cognitoPublicKeys map[string]*rsa.PublicKey
	storageClient     *storage.Client
}

type payload struct {
	Type string            `json:"type"`
	Data map[string]string `json:"data"`
}

func NewServer() *server {
	cfg := NewConfig()
	issuer := fmt.Sprintf(
		"https://cognito-idp.%s.amazonaws.com/%s",
		cfg.AwsRegion,
		cfg.CognitoUserPoolId,
	)
	cognitoPublicKeys, err := awsAuth.LoadCognitoPublicKeys(issuer + "/.well-known/jwks.json")
	if err != nil {
		panic(err)
	}
	awsCfg, _ := config.LoadDefaultConfig(context.TODO())
	srv := &server{
		address: "0.0.0.0:" + cfg.Port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
		config:            cfg,
		issuer:            issuer,
		cognitoPublicKeys: cognitoPublicKeys,
		storageClient: storage.NewClient(
			dynamodb.NewFromConfig(awsCfg),
		),
	}
	return srv
}

// Start method    starts the club board server
func (s *server) Start() error {
	go s.refreshLoop()

	http.HandleFunc("/board", func(w http.ResponseWriter, r *http.Request) {
		userId, err := s.auth(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(err.Error()))
			return
		}

		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Error(
				"failed to upgrade connection",
				zap.String("error", err.Error()),
			)
			return
		}
		defer conn.Close()

		c := newClient(conn, userId)
		s.clients.Store(conn.RemoteAddr().String(), c)
		defer s.clients.Delete(conn.RemoteAddr().String())
		logging.Info("display connected",
			zap.String("user_id", userId),
			zap.String("remote_address", conn.RemoteAddr().String()),
		)

		// Fresh displays get the board immediately instead of waiting
		// for the next refresh tick.
		s.sendSnapshot(c)

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				logging.Info(
					"connection closed",
					zap.String("remote_address", conn.RemoteAddr().String()),
					zap.Error(err),
				)
				break
			}

			payload := payload{}
			if err := json.Unmarshal(message, &payload); err != nil {
				conn.Close()
				break
			}
			s.handleMessage(c, payload)
		}
	})
	logging.Info("club board server started", zap.String("port", s.config.Port))
	return http.ListenAndServe(s.address, nil)
}

// auth method    authenticates the display and extracts userId
func (s *server) auth(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		// Browser websocket clients cannot set headers on the
		// handshake, so the token may ride in the query string.
		token = r.URL.Query().Get("token")
	}
	userId, err := awsAuth.ValidateToken(token, s.cognitoPublicKeys, s.issuer)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return userId, nil
}

func (s *server) handleMessage(c *client, payload payload) {
	switch payload.Type {
	case "refresh":
		s.sendSnapshot(c)
	case "ping":
		if err := c.writeJson(map[string]string{"type": "pong"}); err != nil {
			logging.Error("failed to answer ping", zap.Error(err))
		}
	default:
		logging.Info("invalid payload type:", zap.String("type", payload.Type))
	}
}

func (s *server) sendSnapshot(c *client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		logging.Error("failed to build board snapshot", zap.Error(err))
		return
	}
	if err := c.writeJson(snapshot); err != nil {
		logging.Error("failed to send board snapshot", zap.String("user_id", c.userId), zap.Error(err))
	}
}

// refreshLoop pushes a fresh snapshot to every connected display on each
// tick. One snapshot is built per tick and shared across displays.
func (s *server) refreshLoop() {
	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		snapshot, err := s.buildSnapshot(ctx)
		cancel()
		if err != nil {
			logging.Error("failed to build board snapshot", zap.Error(err))
			continue
		}
		s.clients.Range(func(_, value interface{}) bool {
			c, ok := value.(*client)
			if !ok {
				return true
			}
			if err := c.writeJson(snapshot); err != nil {
				logging.Error("failed to push board snapshot",
					zap.String("user_id", c.userId),
					zap.Error(err),
				)
			}
			return true
		})
	}
}
