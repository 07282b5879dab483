package app

//go:generate mockgen -destination=../mocks/mock_signal.go -package=mocks github.com/dkeye/Debate/internal/core SignalConnection
//go:generate mockgen -destination=../mocks/mock_oracle.go -package=mocks github.com/dkeye/Debate/internal/app FactChecker
