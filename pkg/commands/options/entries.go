package options

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/studyhub/pkg/entity"
)

// TaskOptions
type TaskOptions struct {
	Title    string
	Category string
	Priority string
	Due      DateFlag
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Task title, instead of the positional words.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category: study, event or personal. Default study.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: high, medium or low. Default medium.")
	o.Due.Name = "due"
	AddDateArg(cmd, &o.Due, "Due date, default today")
}

// TitleFrom joins args into the title unless --title was given.
func (o *TaskOptions) TitleFrom(args []string) {
	if o.Title == "" {
		o.Title = strings.Join(args, " ")
	}
}

// CategoryPointer returns the category when --category was set.
func (o *TaskOptions) CategoryPointer(flags *pflag.FlagSet) *entity.Category {
	if !flags.Changed("category") {
		return nil
	}
	c := entity.Category(o.Category)
	return &c
}

// PriorityPointer returns the priority when --priority was set.
func (o *TaskOptions) PriorityPointer(flags *pflag.FlagSet) *entity.Priority {
	if !flags.Changed("priority") {
		return nil
	}
	p := entity.Priority(o.Priority)
	return &p
}

// EventOptions
type EventOptions struct {
	Name         string
	Notes        string
	Deadline     DateFlag
	Participates DateFlag
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Event name, instead of the positional words.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Free text about the event.")
	o.Deadline.Name = "deadline"
	AddDateArg(cmd, &o.Deadline, "Registration deadline, default today")
	o.Participates.Name = "on"
	AddDateArg(cmd, &o.Participates, "Participation date, default today")
}

func (o *EventOptions) NameFrom(args []string) {
	if o.Name == "" {
		o.Name = strings.Join(args, " ")
	}
}

// NoteOptions
type NoteOptions struct {
	Content string
	On      DateFlag
}

func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	o.On.Name = "on"
	AddDateArg(cmd, &o.On, "Date the note belongs to, default today")
}

func (o *NoteOptions) ContentFrom(args []string) {
	o.Content = strings.Join(args, " ")
}
