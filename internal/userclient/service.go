package userclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"quiz-platform/internal/assistant"
)

const (
	defaultServer            = "http://127.0.0.1:8080"
	defaultHTTPTimeout       = 5 * time.Second
	defaultMaxInvalidAnswers = 3
)

type Config struct {
	ServerURL         string
	AssistantURL      string
	MaxInvalidAnswers int
	HTTPTimeout       time.Duration
}

// session is the client-held identity record: kept for the lifetime of the
// command loop, never persisted, resent to the server only as the token.
type session struct {
	userID int64
	name   string
	role   string
}

// Run drives the interactive command loop. All quiz-taking state (the answer
// map, the locally computed score) is transient and lives in this loop.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}

	maxInvalidAnswers := cfg.MaxInvalidAnswers
	if maxInvalidAnswers <= 0 {
		maxInvalidAnswers = defaultMaxInvalidAnswers
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	client := NewHTTPClient(serverURL, httpClient)
	helper := assistant.NewClient(cfg.AssistantURL, httpClient)
	reader := bufio.NewReader(in)

	var current *session

	fmt.Fprintf(out, "quiz-client\nserver=%s\n\n", serverURL)
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		command := strings.ToLower(args[0])

		switch command {
		case "help":
			printHelp(out)
		case "exit":
			return nil
		case "register":
			current = runRegister(ctx, reader, out, client, serverURL)
		case "login":
			current = runLogin(ctx, reader, out, client, serverURL)
		case "quizzes":
			if !requireSession(out, current) {
				continue
			}
			if err := runListQuizzes(ctx, out, client, serverURL); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "take":
			if !requireSession(out, current) {
				continue
			}
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: take <quiz_id>")
				continue
			}
			quizID, parseErr := strconv.ParseInt(args[1], 10, 64)
			if parseErr != nil || quizID <= 0 {
				fmt.Fprintln(out, "quiz_id must be a positive integer")
				continue
			}
			if err := runTakeQuiz(ctx, reader, out, client, quizID, maxInvalidAnswers, serverURL); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "results":
			if !requireSession(out, current) {
				continue
			}
			if err := runMyResults(ctx, out, client, current.userID, serverURL); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "ask":
			if len(args) < 2 {
				fmt.Fprintln(out, "usage: ask <question text>")
				continue
			}
			if err := runAsk(ctx, out, helper, strings.Join(args[1:], " ")); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

func runRegister(ctx context.Context, reader *bufio.Reader, out io.Writer, client *HTTPClient, serverURL string) *session {
	name, err := promptLine(reader, out, "name: ")
	if err != nil {
		return nil
	}
	email, err := promptLine(reader, out, "email: ")
	if err != nil {
		return nil
	}
	password, err := promptLine(reader, out, "password: ")
	if err != nil {
		return nil
	}

	payload, err := client.Register(ctx, name, email, password)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", describeClientError(err, serverURL))
		return nil
	}

	client.SetToken(payload.Token)
	fmt.Fprintf(out, "registered as %s (%s)\n", payload.Name, payload.Role)
	return &session{userID: payload.ID, name: payload.Name, role: payload.Role}
}

func runLogin(ctx context.Context, reader *bufio.Reader, out io.Writer, client *HTTPClient, serverURL string) *session {
	email, err := promptLine(reader, out, "email: ")
	if err != nil {
		return nil
	}
	password, err := promptLine(reader, out, "password: ")
	if err != nil {
		return nil
	}

	payload, err := client.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", describeClientError(err, serverURL))
		return nil
	}

	client.SetToken(payload.Token)
	fmt.Fprintf(out, "logged in as %s (%s)\n", payload.Name, payload.Role)
	return &session{userID: payload.ID, name: payload.Name, role: payload.Role}
}

func runListQuizzes(ctx context.Context, out io.Writer, client *HTTPClient, serverURL string) error {
	quizzes, err := client.ListQuizzes(ctx)
	if err != nil {
		return describeClientError(err, serverURL)
	}

	if len(quizzes) == 0 {
		fmt.Fprintln(out, "No quizzes yet.")
		return nil
	}

	fmt.Fprintln(out, "Quizzes:")
	for _, item := range quizzes {
		fmt.Fprintf(out, "%d. %s — %s (completed by %d)\n",
			item.ID,
			item.Title,
			item.Description,
			item.CompletedCount,
		)
	}
	return nil
}

func runTakeQuiz(ctx context.Context, reader *bufio.Reader, out io.Writer, client *HTTPClient, quizID int64, maxInvalidAnswers int, serverURL string) error {
	questions, err := client.ListQuestions(ctx, quizID)
	if err != nil {
		return describeClientError(err, serverURL)
	}
	if len(questions) == 0 {
		fmt.Fprintf(out, "quiz %d has no questions.\n", quizID)
		return nil
	}

	// Transient quiz-taking state: selected option per question id.
	answers := make(map[int64]string, len(questions))
	score := 0

	for idx, question := range questions {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Q%d: %s\n\n", idx+1, question.QuestionText)
		for optionIdx, option := range question.Options {
			fmt.Fprintf(out, "%d. %s\n", optionIdx+1, option)
		}
		fmt.Fprintln(out)

		choice, ok := promptChoice(reader, out, len(question.Options), maxInvalidAnswers)
		if !ok {
			fmt.Fprintln(out, "Skipping question after multiple invalid responses.")
			continue
		}

		selected := question.Options[choice-1]
		answers[question.ID] = selected
		if selected == question.CorrectAnswer {
			score++
		}
	}

	fmt.Fprintf(out, "\nScore: %d/%d\n", score, len(questions))

	// The answer map travels with the submission so the server can verify the
	// locally computed score against the stored correct answers.
	submitted, err := client.SubmitResult(ctx, quizID, score, answers)
	if err != nil {
		return describeClientError(err, serverURL)
	}
	if submitted.Score != score {
		fmt.Fprintf(out, "server recorded score %d\n", submitted.Score)
	} else {
		fmt.Fprintln(out, "result saved")
	}
	return nil
}

func runMyResults(ctx context.Context, out io.Writer, client *HTTPClient, userID int64, serverURL string) error {
	results, err := client.MyResults(ctx, userID)
	if err != nil {
		return describeClientError(err, serverURL)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No results yet.")
		return nil
	}

	fmt.Fprintln(out, "Your results:")
	for _, item := range results {
		fmt.Fprintf(out, "quiz %d: score %d (%s)\n", item.QuizID, item.Score, item.CompletedAt)
	}
	return nil
}

func runAsk(ctx context.Context, out io.Writer, helper *assistant.Client, prompt string) error {
	if !helper.Configured() {
		fmt.Fprintln(out, "assistant is not configured; set --assistant or ASSISTANT_URL")
		return nil
	}

	reply, err := helper.Ask(ctx, prompt)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, reply)
	return nil
}

func requireSession(out io.Writer, current *session) bool {
	if current == nil {
		fmt.Fprintln(out, "login or register first")
		return false
	}
	return true
}
