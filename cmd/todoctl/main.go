package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-todo-list/internal/client"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

const usage = `usage: todoctl [flags] <command> [args]

commands:
  useradd <username> [email]   create a user
  list                         list every user's todos
  mine                         list your todos (not for all-digit usernames)
  add <content>                add a todo
  done <id> | undone <id>      set the completion flag
  edit <id> <content>          replace the content
  rm <id>                      delete a todo

flags:
`

type options struct {
	addr     string
	username string
	email    string
	logLevel string
	timeout  time.Duration
}

func main() {
	opts, args := parseFlags(os.Args[1:])

	if err := logger.Initialize(opts.logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if err := run(ctx, os.Stdout, client.NewTodoClient(opts.addr), opts, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(argv []string) (options, []string) {
	var opts options
	fs := flag.NewFlagSet("todoctl", flag.ExitOnError)
	fs.StringVar(&opts.addr, "addr", "http://localhost:8080", "Todo API base URL")
	fs.StringVar(&opts.username, "u", os.Getenv("TODO_USERNAME"), "Username to log in with")
	fs.StringVar(&opts.email, "e", os.Getenv("TODO_EMAIL"), "Email to log in with")
	fs.StringVar(&opts.logLevel, "log-level", "error", "Log level")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Overall request timeout")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.Parse(argv)
	return opts, fs.Args()
}

var errUsage = errors.New("invalid arguments, run todoctl -h for usage")

func run(ctx context.Context, out io.Writer, api *client.TodoClient, opts options, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	if cmd == "useradd" {
		if len(args) == 0 || len(args) > 2 {
			return errUsage
		}
		var email *string
		if len(args) == 2 {
			email = &args[1]
		}
		user, err := api.AddUser(ctx, args[0], email)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "created user %s (id %d)\n", user.Username, user.ID)
		return nil
	}

	app := client.NewApp(api)
	if err := app.Login(ctx, opts.username, opts.email); err != nil {
		return err
	}

	switch cmd {
	case "list":
		printTodos(out, app.Todos())
		return nil
	case "mine":
		if err := app.LoadUserTodos(ctx); err != nil {
			return err
		}
		printTodos(out, app.Todos())
		return nil
	case "add":
		if len(args) == 0 {
			return errUsage
		}
		todo, err := app.AddTodo(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "added todo %d\n", todo.ID)
		return nil
	}

	if len(args) == 0 {
		return errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid todo id %q: %w", args[0], err)
	}

	switch cmd {
	case "done", "undone":
		err = app.SetCompleted(ctx, id, cmd == "done")
	case "edit":
		if len(args) < 2 {
			return errUsage
		}
		app.ToggleEdit(id)
		err = app.SaveEdit(ctx, id, strings.Join(args[1:], " "))
	case "rm":
		err = app.Delete(ctx, id)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "ok")
	return nil
}

func printTodos(out io.Writer, todos []models.Todo) {
	if len(todos) == 0 {
		fmt.Fprintln(out, "no todos")
		return
	}
	for _, t := range todos {
		mark := " "
		if t.HasCompleted {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %d  %s  (%s)\n", mark, t.ID, t.Content, t.Username)
	}
}
