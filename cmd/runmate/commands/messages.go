package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"runmate/internal/domain"
	"runmate/internal/tui"
)

func messagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Inbox and conversations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List conversations, newest first",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			convs, err := appCtx.Messaging.Conversations(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(convs) == 0 {
				fmt.Fprintln(out, "No conversations yet. Like a match to start one.")
				return nil
			}
			t := tui.NewTable("ID", "WITH", "UNREAD", "LAST MESSAGE")
			for _, c := range convs {
				unread := ""
				if c.UnreadCount > 0 {
					unread = fmt.Sprint(c.UnreadCount)
				}
				t.AddRow(string(c.ID), c.Peer.DisplayName(), unread, c.LastMessage)
			}
			fmt.Fprint(out, t.String())
			return nil
		}),
	}

	var markRead bool
	thread := &cobra.Command{
		Use:   "thread <id>",
		Short: "Show a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			id := domain.ConversationID(args[0])
			msgs, err := appCtx.Messaging.Thread(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range msgs {
				who := "them"
				if m.SenderID == current.User.ID {
					who = "you"
				}
				fmt.Fprintf(out, "%s  %-4s  %s\n", m.SentAt.Local().Format("Jan 2 15:04"), who, m.Body)
			}
			if markRead {
				return appCtx.Messaging.MarkRead(cmd.Context(), id)
			}
			return nil
		}),
	}
	thread.Flags().BoolVar(&markRead, "mark-read", true, "mark the conversation read")

	send := &cobra.Command{
		Use:   "send <id> <text>...",
		Short: "Send a message",
		Args:  cobra.MinimumNArgs(2),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			m, err := appCtx.Messaging.Send(cmd.Context(), domain.ConversationID(args[0]), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent (%s)\n", m.ID)
			return nil
		}),
	}

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a conversation read",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			return appCtx.Messaging.MarkRead(cmd.Context(), domain.ConversationID(args[0]))
		}),
	}

	cmd.AddCommand(list, thread, send, read)
	return cmd
}

func unreadCmd() *cobra.Command {
	var watch time.Duration
	cmd := &cobra.Command{
		Use:   "unread",
		Short: "Print the number of unread messages",
		Long: "Print the number of unread messages. With --watch the inbox is polled\n" +
			"at that interval and the total is printed each time it changes, until interrupted.",
		Args: cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if watch > 0 {
				return watchUnread(cmd, watch)
			}
			n, err := appCtx.Messaging.RefreshUnread(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		}),
	}
	cmd.Flags().DurationVar(&watch, "watch", 0, "poll interval; print the total whenever it changes")
	return cmd
}

// watchUnread prints the badge total each time the shared counter changes.
func watchUnread(cmd *cobra.Command, every time.Duration) error {
	ctx := cmd.Context()
	updates, stop := appCtx.Unread.Subscribe()
	defer stop()

	if _, err := appCtx.Messaging.RefreshUnread(ctx); err != nil {
		return err
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	last := -1
	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-updates:
			if n != last {
				fmt.Fprintln(cmd.OutOrStdout(), n)
				last = n
			}
		case <-ticker.C:
			if _, err := appCtx.Messaging.RefreshUnread(ctx); err != nil && ctx.Err() == nil {
				appCtx.Log.Warn("refresh unread failed", zap.Error(err))
			}
		}
	}
}
