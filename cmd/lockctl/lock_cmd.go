package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/document-lock/internal/app"
	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	"github.com/amirhossein-jamali/document-lock/internal/domain/usecase/lock"
)

func newListCommand(open opener, flags *globalFlags) *cobra.Command {
	var holder string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List active locks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, flags, func(a *app.App) error {
				var (
					locks []*entity.Lock
					err   error
				)
				if holder != "" {
					locks, err = a.Coordinator.FindByHolder(cmd.Context(), holder)
				} else {
					locks, err = a.Coordinator.FindAll(cmd.Context())
				}
				if err != nil {
					return err
				}
				return printLocks(cmd.OutOrStdout(), locks, a.Clock.Now())
			})
		},
	}
	cmd.Flags().StringVar(&holder, "holder", "", "only show locks held by this holder")
	return cmd
}

func newShowCommand(open opener, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <lock-id>",
		Short: "Show one lock with its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, flags, func(a *app.App) error {
				l, err := a.Coordinator.FindByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printLock(cmd.OutOrStdout(), l, a.Clock.Now())
			})
		},
	}
}

func newAcquireCommand(open opener, flags *globalFlags) *cobra.Command {
	var holder, reason string
	cmd := &cobra.Command{
		Use:   "acquire <type:id>...",
		Short: "Take a manual lock on documents",
		Long:  "Take a manual lock on documents. The lock is held until released with 'lockctl release'.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := parseEntries(args)
			if err != nil {
				return err
			}
			return withApp(cmd, open, flags, func(a *app.App) error {
				l, err := a.Coordinator.Acquire(cmd.Context(), entity.Holder{Name: holder}, entity.LockKindManual, reason, entries)
				var conflict *lock.ConflictError
				if errors.As(err, &conflict) {
					fmt.Fprintln(cmd.ErrOrStderr(), "documents are locked by:")
					_ = printLocks(cmd.ErrOrStderr(), conflict.Conflicts, a.Clock.Now())
					return err
				}
				if err != nil {
					return err
				}
				return printLock(cmd.OutOrStdout(), l, a.Clock.Now())
			})
		},
	}
	cmd.Flags().StringVar(&holder, "holder", "", "name of the editor taking the lock")
	cmd.Flags().StringVar(&reason, "reason", "", "why the documents are locked")
	_ = cmd.MarkFlagRequired("holder")
	return cmd
}

func newReleaseCommand(open opener, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "release <lock-id>...",
		Short: "Release locks by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, flags, func(a *app.App) error {
				failed := 0
				for _, id := range args {
					if a.Coordinator.ReleaseByID(cmd.Context(), id) {
						fmt.Fprintf(cmd.OutOrStdout(), "released %s\n", id)
						continue
					}
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "could not release %s\n", id)
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d locks not released", failed, len(args))
				}
				return nil
			})
		},
	}
}

func newConflictsCommand(open opener, flags *globalFlags) *cobra.Command {
	var holder, transactionID string
	cmd := &cobra.Command{
		Use:   "conflicts <type:id>...",
		Short: "Show which locks would block a holder or transaction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (holder == "") == (transactionID == "") {
				return errors.New("exactly one of --holder or --transaction is required")
			}
			entries, err := parseEntries(args)
			if err != nil {
				return err
			}
			scope := entity.ManualScope(holder)
			if transactionID != "" {
				scope = entity.TransactionScope(transactionID)
			}
			return withApp(cmd, open, flags, func(a *app.App) error {
				conflicts, err := a.Coordinator.FindConflicts(cmd.Context(), scope, entries)
				if err != nil {
					return err
				}
				if len(conflicts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no conflicts")
					return nil
				}
				return printLocks(cmd.OutOrStdout(), conflicts, a.Clock.Now())
			})
		},
	}
	cmd.Flags().StringVar(&holder, "holder", "", "check as this manual holder")
	cmd.Flags().StringVar(&transactionID, "transaction", "", "check as this transaction")
	return cmd
}

func parseEntries(args []string) ([]entity.LockEntry, error) {
	entries := make([]entity.LockEntry, 0, len(args))
	for _, arg := range args {
		e, err := entity.ParseLockEntry(arg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func printLocks(w io.Writer, locks []*entity.Lock, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tHOLDER\tSINCE\tENTRIES\tREASON")
	for _, l := range locks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.Kind, l.Holder.Name, humanize.RelTime(l.StartedAt, now, "ago", "from now"),
			joinEntries(l.Entries), l.Reason)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s active\n", humanize.Comma(int64(len(locks))))
	return err
}

func printLock(w io.Writer, l *entity.Lock, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", l.ID)
	fmt.Fprintf(tw, "Kind:\t%s\n", l.Kind)
	fmt.Fprintf(tw, "Holder:\t%s\n", l.Holder.Name)
	if l.TransactionID != "" {
		fmt.Fprintf(tw, "Transaction:\t%s\n", l.TransactionID)
	}
	fmt.Fprintf(tw, "Reason:\t%s\n", l.Reason)
	fmt.Fprintf(tw, "Started:\t%s (%s)\n", l.StartedAt.Format(time.RFC3339), humanize.RelTime(l.StartedAt, now, "ago", "from now"))
	fmt.Fprintf(tw, "Entries:\t%s\n", joinEntries(l.Entries))
	return tw.Flush()
}

func joinEntries(entries []entity.LockEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ",")
}
