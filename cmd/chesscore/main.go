package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/config"
	"github.com/hailam/chesscore/internal/engine"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/logging"
	"github.com/hailam/chesscore/internal/storage"
)

// maxSelfPlayPlies caps self-play games that neither side can finish.
const maxSelfPlayPlies = 300

var (
	configPath = flag.String("config", "", "path to YAML config file")
	selfPlay   = flag.Bool("selfplay", false, "play an engine-vs-engine game and record it")
	fenStr     = flag.String("fen", "", "position to analyze (FEN)")
	replayID   = flag.String("replay", "", "replay a stored game by id and print its final position")
	listGames  = flag.Bool("list", false, "list stored games")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer logger.Sync()

	mode, err := engine.ParseMode(cfg.Search.Mode)
	if err != nil {
		logger.Fatal("bad search mode", zap.Error(err))
	}
	eng := engine.New(mode, cfg.Search.Depth)

	switch {
	case *fenStr != "":
		analyze(logger, eng, *fenStr)
	case *selfPlay:
		runSelfPlay(logger, cfg, eng)
	case *replayID != "":
		replay(logger, cfg, *replayID)
	case *listGames:
		list(logger, cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// analyze prints the chosen move and static evaluation for a position.
func analyze(logger *zap.Logger, eng *engine.Engine, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		logger.Fatal("parse fen", zap.Error(err))
	}

	move, err := eng.ChooseMove(&pos)
	if err != nil {
		logger.Fatal("no move", zap.Error(err))
	}

	fmt.Printf("bestmove %s\n", move)
	fmt.Printf("eval %d\n", engine.Evaluate(&pos))
}

// runSelfPlay plays both sides with the configured engine, logs every move
// and stores the finished game.
func runSelfPlay(logger *zap.Logger, cfg *config.Config, eng *engine.Engine) {
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer store.Close()

	st := game.New(game.TimeControl{Initial: cfg.TimeControlDuration()})
	st.Mode = eng.Mode()
	st.Depth = eng.Depth()

	started := time.Now()
	result := "draw"

	for ply := 0; ply < maxSelfPlayPlies; ply++ {
		mover := st.SideToMove()

		if st.Position.IsCheckmate(mover) {
			result = mover.Other().String()
			logger.Info("checkmate", zap.String("winner", result))
			break
		}
		if st.Position.IsStalemate(mover) {
			logger.Info("stalemate")
			break
		}

		move, err := eng.ChooseMove(&st.Position)
		if err != nil {
			logger.Error("engine gave up unexpectedly", zap.Error(err))
			break
		}

		st = st.Apply(move)
		logger.Info("move",
			zap.Int("ply", ply+1),
			zap.String("side", mover.String()),
			zap.String("move", move.String()),
			zap.Int("eval", engine.Evaluate(&st.Position)),
		)
	}

	moves := make([]string, len(st.History))
	for i, m := range st.History {
		moves[i] = m.String()
	}

	rec := &storage.GameRecord{
		Moves:    moves,
		Result:   normalizeResult(result),
		Duration: time.Since(started),
	}
	if err := store.SaveGame(rec); err != nil {
		logger.Fatal("save game", zap.Error(err))
	}

	logger.Info("game recorded",
		zap.String("id", rec.ID),
		zap.String("result", rec.Result),
		zap.Int("plies", len(rec.Moves)),
	)
	fmt.Print(st.Position.String())
}

// replay rebuilds a stored game from its move list and prints the final
// position.
func replay(logger *zap.Logger, cfg *config.Config, id string) {
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer store.Close()

	rec, err := store.LoadGame(id)
	if err != nil {
		logger.Fatal("load game", zap.Error(err))
	}

	moves := make([]board.Move, len(rec.Moves))
	for i, s := range rec.Moves {
		m, err := board.ParseMove(s)
		if err != nil {
			logger.Fatal("bad move in record", zap.String("move", s), zap.Error(err))
		}
		moves[i] = m
	}

	st := game.Rebuild(moves, game.New(game.TimeControl{Initial: cfg.TimeControlDuration()}))
	fmt.Print(st.Position.String())
	fmt.Printf("result: %s (%d plies)\n", rec.Result, len(rec.Moves))
}

// list prints the stored games, most recent first.
func list(logger *zap.Logger, cfg *config.Config) {
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer store.Close()

	records, err := store.ListGames()
	if err != nil {
		logger.Fatal("list games", zap.Error(err))
	}

	for _, rec := range records {
		fmt.Printf("%s  %-5s  %3d plies  %s\n",
			rec.ID, rec.Result, len(rec.Moves), rec.PlayedAt.Format(time.RFC3339))
	}
}

// normalizeResult maps a color name to a stored result string.
func normalizeResult(result string) string {
	switch result {
	case board.White.String():
		return "white"
	case board.Black.String():
		return "black"
	default:
		return "draw"
	}
}
