// Package console is the interactive front end of the store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"BattleFS/internal/application/service"
	"BattleFS/internal/domain"

	"go.uber.org/dig"
)

const prompt = "\nBattleFS> "

type Services struct {
	dig.In

	Init    *service.InitStoreService
	Create  *service.CreateObjectService
	Read    *service.ReadObjectService
	Delete  *service.DeleteObjectService
	List    *service.ListObjectsService
	Load    *service.LoadDirectoryService
	Persist *service.PersistStoreService
}

type Console struct {
	services Services
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
}

func NewConsole(services Services, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		services: services,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

type command struct {
	usage       string
	description string
	args        int
	run         func(c *Console, args []string) error
}

var commands = map[string]command{
	"init":     {"init", "initialize a new system", 0, (*Console).initStore},
	"load_dir": {"load_dir <directory>", "load every file of a directory", 1, (*Console).loadDir},
	"create":   {"create <file>", "add a file to the system", 1, (*Console).create},
	"read":     {"read <file>", "print the contents of a file", 1, (*Console).read},
	"delete":   {"delete <file>", "remove a file", 1, (*Console).delete},
	"list":     {"list", "list every file", 0, (*Console).list},
	"save":     {"save <name>", "save the system", 1, (*Console).save},
	"load":     {"load <name>", "load a system", 1, (*Console).load},
}

var helpOrder = []string{"init", "load_dir", "create", "read", "delete", "list", "save", "load"}

// Run reads commands until exit, end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== BattleFS - compressed file system ===")
	fmt.Fprintln(c.out, "Type 'help' to list the available commands")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" {
			return nil
		}
		c.Execute(fields[0], fields[1:])
	}
}

// Execute runs one command and prints its outcome.
func (c *Console) Execute(name string, args []string) {
	if name == "help" {
		c.help()
		return
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintln(c.out, "Unknown command. Type 'help' for help.")
		return
	}
	if len(args) < cmd.args {
		fmt.Fprintf(c.out, "Usage: %s\n", cmd.usage)
		return
	}

	if err := cmd.run(c, args); err != nil {
		if errors.Is(err, domain.ErrNotInitialized) {
			fmt.Fprintln(c.out, "Error: system not initialized. Use 'init' first.")
			return
		}
		c.logger.Debug("command failed", "command", name, "err", err)
	}
}

func (c *Console) help() {
	fmt.Fprintln(c.out, "\n=== BattleFS - compressed file system ===")
	fmt.Fprintln(c.out, "Available commands:")
	for _, name := range helpOrder {
		cmd := commands[name]
		fmt.Fprintf(c.out, "  %-24s - %s\n", cmd.usage, cmd.description)
	}
	fmt.Fprintf(c.out, "  %-24s - %s\n", "exit", "quit")
	fmt.Fprintf(c.out, "  %-24s - %s\n", "help", "show this help")
}

func (c *Console) initStore(_ []string) error {
	c.services.Init.Execute(service.InitStoreCommand{})
	fmt.Fprintln(c.out, "System initialized.")
	return nil
}

func (c *Console) loadDir(args []string) error {
	res, err := c.services.Load.Execute(service.LoadDirectoryCommand{Dir: args[0]})
	if errors.Is(err, domain.ErrNotInitialized) {
		return err
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error loading files: %v\n", err)
		return err
	}
	for path, ferr := range res.Failed {
		fmt.Fprintf(c.out, "Error loading %s: %v\n", path, ferr)
	}
	fmt.Fprintf(c.out, "Loaded %d files from '%s'\n", res.Loaded, args[0])
	return nil
}

func (c *Console) create(args []string) error {
	_, err := c.services.Create.Execute(service.CreateObjectCommand{Path: args[0]})
	if err == nil {
		fmt.Fprintf(c.out, "File '%s' created and compressed.\n", args[0])
	} else if !errors.Is(err, domain.ErrNotInitialized) {
		fmt.Fprintf(c.out, "Error creating file '%s': %v\n", args[0], err)
	}
	return err
}

func (c *Console) read(args []string) error {
	err := c.services.Read.Execute(service.ReadObjectQuery{Name: args[0], Output: c.out})
	if err != nil && !errors.Is(err, domain.ErrNotInitialized) {
		fmt.Fprintf(c.out, "Error reading file '%s': %v\n", args[0], err)
	}
	return err
}

func (c *Console) delete(args []string) error {
	_, err := c.services.Delete.Execute(service.DeleteObjectCommand{Name: args[0]})
	if err == nil {
		fmt.Fprintf(c.out, "File '%s' deleted.\n", args[0])
	} else if !errors.Is(err, domain.ErrNotInitialized) {
		fmt.Fprintf(c.out, "Error deleting file '%s': %v\n", args[0], err)
	}
	return err
}

func (c *Console) list(_ []string) error {
	listing, err := c.services.List.Execute()
	if err != nil {
		return err
	}
	_, err = listing.WriteTo(c.out)
	return err
}

func (c *Console) save(args []string) error {
	err := c.services.Persist.Save(args[0])
	if err == nil {
		fmt.Fprintf(c.out, "System saved as '%s'.\n", args[0])
	} else if !errors.Is(err, domain.ErrNotInitialized) {
		fmt.Fprintf(c.out, "Error saving the system: %v\n", err)
	}
	return err
}

func (c *Console) load(args []string) error {
	err := c.services.Persist.Load(args[0])
	if err == nil {
		fmt.Fprintf(c.out, "System '%s' loaded.\n", args[0])
	} else {
		fmt.Fprintf(c.out, "Error loading system '%s': %v\n", args[0], err)
	}
	return err
}
