package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"task-tracker/internal/config"
	"task-tracker/internal/logger"
	"task-tracker/internal/manager"
	"task-tracker/internal/models"
	"task-tracker/internal/storage"
)

type Bot struct {
	api         *tgbotapi.BotAPI
	taskManager *manager.TaskManager
	log         *logger.Logger
}

func NewBot(token string, tm *manager.TaskManager, appLog *logger.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	appLog.Info("Authorized", "username", bot.Self.UserName)

	return &Bot{
		api:         bot,
		taskManager: tm,
		log:         appLog,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return fmt.Errorf("get updates: %w", err)
	}

	b.log.Info("Bot is listening for messages")

	for update := range updates {
		if update.Message == nil {
			continue
		}
		go b.handleMessage(update.Message)
	}
	return nil
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	b.log.Debug("Message received", "user", msg.From.UserName, "text", msg.Text)

	if !msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, "Use /help to see the available commands.")
		return
	}

	switch msg.Command() {
	case "start":
		b.sendHelp(msg.Chat.ID)
	case "add":
		b.addTask(msg)
	case "list":
		b.listTasks(msg.Chat.ID)
	case "get":
		b.showTask(msg)
	case "done":
		b.completeTask(msg)
	case "delete":
		b.deleteTask(msg)
	case "help":
		b.sendHelp(msg.Chat.ID)
	default:
		b.sendMessage(msg.Chat.ID, "Unknown command. Use /help for the command list.")
	}
}

// addTask parses "/add Title | Priority | YYYY-MM-DD | description".
// The description segment is optional; status starts as Pending.
func (b *Bot) addTask(msg *tgbotapi.Message) {
	args := msg.CommandArguments()
	if args == "" {
		b.sendMessage(msg.Chat.ID, "Usage: /add Title | Priority | YYYY-MM-DD | description")
		return
	}

	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		b.sendMessage(msg.Chat.ID, "Usage: /add Title | Priority | YYYY-MM-DD | description")
		return
	}

	req := models.TaskRequest{
		Title:    parts[0],
		Priority: parts[1],
		Status:   string(models.StatusPending),
		Deadline: parts[2],
	}
	if len(parts) > 3 {
		req.Description = parts[3]
	}

	id, err := b.taskManager.CreateTask(req)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Error: "+err.Error())
		return
	}

	b.sendMessage(msg.Chat.ID, fmt.Sprintf("Task #%d created: %s (due %s)", id, req.Title, req.Deadline))
}

func (b *Bot) listTasks(chatID int64) {
	tasks, err := b.taskManager.GetAllTasks()
	if err != nil {
		b.sendMessage(chatID, "Error: "+err.Error())
		return
	}

	if len(tasks) == 0 {
		b.sendMessage(chatID, "No tasks yet. Add one with /add.")
		return
	}

	var response strings.Builder
	response.WriteString("Your tasks:\n\n")
	for _, task := range tasks {
		response.WriteString(fmt.Sprintf("#%d [%s/%s] %s (due %s)\n",
			task.ID, task.Priority, task.Status, task.Title, task.Deadline))
	}

	b.sendMessage(chatID, response.String())
}

func (b *Bot) showTask(msg *tgbotapi.Message) {
	id, ok := b.parseID(msg, "/get 1")
	if !ok {
		return
	}

	task, err := b.taskManager.GetTask(id)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Error: "+err.Error())
		return
	}

	response := fmt.Sprintf("#%d %s\nPriority: %s\nStatus: %s\nDeadline: %s\nCreated: %s",
		task.ID, task.Title, task.Priority, task.Status, task.Deadline, task.CreatedAt)
	if task.Description != "" {
		response += "\n\n" + task.Description
	}

	b.sendMessage(msg.Chat.ID, response)
}

// completeTask sets the task status to Completed. Updates always carry the
// full task, so the current record is fetched first.
func (b *Bot) completeTask(msg *tgbotapi.Message) {
	id, ok := b.parseID(msg, "/done 1")
	if !ok {
		return
	}

	task, err := b.taskManager.GetTask(id)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Error: "+err.Error())
		return
	}

	req := models.TaskRequest{
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(models.StatusCompleted),
		Deadline:    task.Deadline,
	}

	if err := b.taskManager.UpdateTask(id, req); err != nil {
		b.sendMessage(msg.Chat.ID, "Error: "+err.Error())
		return
	}

	b.sendMessage(msg.Chat.ID, fmt.Sprintf("Task #%d marked as Completed", id))
}

func (b *Bot) deleteTask(msg *tgbotapi.Message) {
	id, ok := b.parseID(msg, "/delete 1")
	if !ok {
		return
	}

	if err := b.taskManager.DeleteTask(id); err != nil {
		b.sendMessage(msg.Chat.ID, "Error: "+err.Error())
		return
	}

	b.sendMessage(msg.Chat.ID, fmt.Sprintf("Task #%d deleted", id))
}

func (b *Bot) parseID(msg *tgbotapi.Message, example string) (int64, bool) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.sendMessage(msg.Chat.ID, "Specify a task number: "+example)
		return 0, false
	}

	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "The task number must be an integer")
		return 0, false
	}
	return id, true
}

func (b *Bot) sendHelp(chatID int64) {
	helpText := `Task tracker commands:

/add Title | Priority | YYYY-MM-DD | description - Add a task
/list - Show all tasks
/get N - Show one task
/done N - Mark a task Completed
/delete N - Delete a task
/help - Show this help

Priority is Low, Medium or High. Example:
/add Ship report | High | 2025-06-01 | quarterly numbers`

	b.sendMessage(chatID, helpText)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error(err, "Error sending message")
	}
}

func main() {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	cfg := config.Load()

	appLog, logFile, err := logger.OpenFile(cfg.LogPath, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("Error opening log file: %v", err)
	}
	defer logFile.Close()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Error creating data directory: %v", err)
		}
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}
	defer store.Close()

	tm := manager.NewTaskManager(store, appLog)

	bot, err := NewBot(token, tm, appLog)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Bot stopped: %v", err)
	}
}
