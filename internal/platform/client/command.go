package client

import (
	"errors"
	"fmt"
	"io"
)

var ErrUsage = errors.New("usage: init [name] | load_dir <dir> | create <file> | read <name> | delete <name> | list")

// RunCommand sends one store operation to the server and prints the outcome
// to out. read writes the original bytes as they are.
func RunCommand(c *StoreClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return ErrUsage
	}
	name, rest := args[0], args[1:]

	if name == "init" {
		storeName := ""
		if len(rest) > 0 {
			storeName = rest[0]
		}
		initialized, err := c.Init(storeName)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "System '%s' initialized.\n", initialized)
		return nil
	}
	if name == "list" {
		listing, err := c.List()
		if err != nil {
			return err
		}
		_, err = listing.WriteTo(out)
		return err
	}

	if len(rest) != 1 {
		return ErrUsage
	}
	arg := rest[0]
	switch name {
	case "load_dir":
		loaded, err := c.LoadDir(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Loaded %d files from '%s'\n", loaded, arg)
	case "create":
		entry, err := c.Create(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "File '%s' created and compressed (%d bytes -> %d bytes).\n", entry.Name, entry.OriginalSize, entry.CompressedSize)
	case "read":
		data, err := c.Read(arg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "delete":
		if _, err := c.Delete(arg); err != nil {
			return err
		}
		fmt.Fprintf(out, "File '%s' deleted.\n", arg)
	default:
		return ErrUsage
	}
	return nil
}
