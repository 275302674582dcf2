package main

import (
	"fmt"

	"github.com/fwojciec/pagesearch"
)

// Run executes the messages command.
func (c *MessagesCmd) Run(deps *Dependencies) error {
	filter := pagesearch.MessageFilter{Limit: c.Limit}
	if c.Email != "" {
		filter.Email = &c.Email
	}

	messages, err := deps.Messages.FindMessages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesearch.ErrorMessage(err))
		return err
	}

	if len(messages) == 0 {
		fmt.Fprintln(deps.Stdout, "No messages found.")
		return nil
	}

	for _, msg := range messages {
		fmt.Fprintf(deps.Stdout, "%s  %s <%s>\n  %s\n",
			msg.CreatedAt.Format("2006-01-02 15:04"), msg.Name, msg.Email, msg.Message)
	}

	return nil
}
