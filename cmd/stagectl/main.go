// stagectl is a terminal console for the registration stage progression
// workflow. It drives the same timeline controller the web clients embed,
// talking to a running API server over HTTP.
//
// Usage:
//
//	stagectl -booking <uuid> -token <jwt> [-api http://localhost:7010] [-context operations]
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"realty-crm-backend/internal/stagegraph"
	"realty-crm-backend/internal/timeline"
	"realty-crm-backend/internal/viewmode"

	"github.com/google/uuid"
)

func main() {
	apiURL := flag.String("api", "http://localhost:7010", "base URL of the API server")
	token := flag.String("token", os.Getenv("STAGECTL_TOKEN"), "bearer token (or STAGECTL_TOKEN)")
	bookingID := flag.String("booking", "", "booking ID (required)")
	contextPath := flag.String("context", "operations", "viewing context: operations or post-sales")
	flag.Parse()

	if *bookingID == "" {
		flag.Usage()
		os.Exit(2)
	}
	id, err := uuid.Parse(*bookingID)
	if err != nil {
		log.Fatalf("invalid booking ID: %v", err)
	}
	if *token == "" {
		log.Fatal("a bearer token is required (use -token or STAGECTL_TOKEN)")
	}

	mode := viewmode.ResolveFromPath(*contextPath)
	client := &apiClient{
		baseURL: strings.TrimRight(*apiURL, "/"),
		token:   *token,
		context: strings.Trim(*contextPath, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}

	snapshot, booking, err := client.fetchTimeline(context.Background(), id)
	if err != nil {
		log.Fatalf("failed to load timeline: %v", err)
	}

	var controller *timeline.Controller
	refresh := func() {
		snap, bk, err := client.fetchTimeline(context.Background(), id)
		if err != nil {
			fmt.Printf("! refresh failed: %v\n", err)
			return
		}
		controller.SetSnapshot(snap)
		controller.SetBooking(bk)
		printView(controller.View(false))
	}
	notify := func(n timeline.Notice) {
		fmt.Printf("[%s] %s\n", n.Level, n.Message)
	}

	controller = timeline.NewController(client, booking, mode, refresh, notify)
	controller.SetSnapshot(snapshot)

	printView(controller.View(false))
	runLoop(controller, client, id)
}

// runLoop reads commands until EOF or quit.
func runLoop(controller *timeline.Controller, client *apiClient, id uuid.UUID) {
	fmt.Println(`commands: advance <n> | shift | note <text> | confirm | cancel | show | quit`)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "advance":
			if len(fields) != 2 {
				fmt.Println("usage: advance <stage number>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			view := controller.View(false)
			if err != nil || n < 1 || n > len(view.Nodes) {
				fmt.Println("no such stage")
				continue
			}
			controller.RequestStageChange(view.Nodes[n-1].Stage)
			if confirmation := controller.Confirmation(); confirmation != nil {
				fmt.Printf("move to %q? type 'confirm' to proceed, 'note <text>' to annotate\n", confirmation.TargetStage.Name)
			}
		case "shift":
			controller.RequestShift()
			if controller.Confirmation() != nil {
				fmt.Println("mark booking as shifted? type 'confirm' to proceed")
			}
		case "note":
			controller.SetNote(strings.Join(fields[1:], " "))
		case "confirm":
			controller.ConfirmSubmit(context.Background())
		case "cancel":
			controller.CancelConfirmation()
		case "show":
			snap, bk, err := client.fetchTimeline(context.Background(), id)
			if err != nil {
				fmt.Printf("! refresh failed: %v\n", err)
				continue
			}
			controller.SetSnapshot(snap)
			controller.SetBooking(bk)
			printView(controller.View(false))
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command")
		}
	}
}

// printView renders the timeline view model to the terminal.
func printView(view timeline.View) {
	label := view.BookingLabel
	if view.ReadOnly {
		label += " [read-only]"
	}
	fmt.Printf("\nbooking %s\n", label)

	if view.Empty {
		fmt.Println(" (no stages configured for this project)")
		fmt.Println()
		return
	}

	for i, node := range view.Nodes {
		marker := " "
		switch node.Classification {
		case stagegraph.ClassificationCurrent:
			marker = ">"
		case stagegraph.ClassificationVisited:
			marker = "x"
		}
		suffix := ""
		if node.Busy {
			suffix = " (submitting...)"
		} else if node.Clickable {
			suffix = " *"
		}
		fmt.Printf(" %s %d. %s%s\n", marker, i+1, node.Stage.Name, suffix)
	}

	if len(view.History) == 0 {
		fmt.Println(" (registration not started)")
	}
	for _, row := range view.History {
		from := row.FromStage
		if from == "" {
			from = "-"
		}
		fmt.Printf(" %s  %s -> %s  by %s\n", row.At, from, row.ToStage, row.ChangedBy)
	}
	fmt.Println()
}

// apiClient talks to the registration endpoints and implements the
// controller's mutation surface.
type apiClient struct {
	baseURL string
	token   string
	context string
	http    *http.Client
}

// Wire shapes of the timeline endpoint.
type wireStage struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Order int       `json:"order"`
}

type wireHistory struct {
	At          string     `json:"at"`
	FromStageID *uuid.UUID `json:"from_stage_id"`
	FromStage   *string    `json:"from_stage"`
	ToStageID   uuid.UUID  `json:"to_stage_id"`
	ToStage     string     `json:"to_stage"`
	ChangedBy   string     `json:"changed_by"`
	Note        string     `json:"note"`
}

type wireSnapshot struct {
	BookingID          uuid.UUID     `json:"booking_id"`
	BookingCode        string        `json:"booking_code"`
	IsShifted          bool          `json:"is_shifted"`
	Stages             []wireStage   `json:"stages"`
	CurrentStage       *wireStage    `json:"current_stage"`
	History            []wireHistory `json:"history"`
	RegistrationExists bool          `json:"registration_exists"`
}

type wireError struct {
	Error string `json:"error"`
}

// AdvanceStage implements timeline.MutationAPI.
func (c *apiClient) AdvanceStage(ctx context.Context, req timeline.AdvanceStageRequest) error {
	path := fmt.Sprintf("/api/v1/%s/bookings/%s/advance", c.context, req.BookingID)
	return c.post(ctx, path, map[string]string{
		"stage_id": req.StageID.String(),
		"note":     req.Note,
	})
}

// ShiftBooking implements timeline.MutationAPI.
func (c *apiClient) ShiftBooking(ctx context.Context, req timeline.ShiftBookingRequest) error {
	path := fmt.Sprintf("/api/v1/%s/bookings/%s/shift", c.context, req.BookingID)
	return c.post(ctx, path, map[string]string{"note": req.Note})
}

func (c *apiClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var wireErr wireError
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &wireErr); err == nil && wireErr.Error != "" {
		return &timeline.SubmitError{Detail: wireErr.Error}
	}
	return &timeline.SubmitError{Detail: fmt.Sprintf("server returned %s", resp.Status)}
}

// fetchTimeline loads the snapshot and booking projection for the console.
func (c *apiClient) fetchTimeline(ctx context.Context, bookingID uuid.UUID) (timeline.Snapshot, timeline.Booking, error) {
	path := fmt.Sprintf("/api/v1/%s/bookings/%s/timeline", c.context, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return timeline.Snapshot{}, timeline.Booking{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return timeline.Snapshot{}, timeline.Booking{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return timeline.Snapshot{}, timeline.Booking{}, err
	}
	if resp.StatusCode != http.StatusOK {
		var wireErr wireError
		if err := json.Unmarshal(data, &wireErr); err == nil && wireErr.Error != "" {
			return timeline.Snapshot{}, timeline.Booking{}, fmt.Errorf("%s", wireErr.Error)
		}
		return timeline.Snapshot{}, timeline.Booking{}, fmt.Errorf("server returned %s", resp.Status)
	}

	var wire wireSnapshot
	if err := json.Unmarshal(data, &wire); err != nil {
		return timeline.Snapshot{}, timeline.Booking{}, fmt.Errorf("decode timeline: %w", err)
	}
	return toSnapshot(wire), timeline.Booking{
		ID:        wire.BookingID,
		Code:      wire.BookingCode,
		IsShifted: wire.IsShifted,
	}, nil
}

// toSnapshot converts the wire form into the controller's read model.
// History entries are resolved against the stage list by ID; names are not
// unique within a project. A stage deleted from the configuration after
// being visited keeps its ID so classification stays correct.
func toSnapshot(wire wireSnapshot) timeline.Snapshot {
	stages := make([]stagegraph.Stage, len(wire.Stages))
	byID := make(map[uuid.UUID]stagegraph.Stage, len(wire.Stages))
	for i, s := range wire.Stages {
		stages[i] = stagegraph.Stage{ID: s.ID, Name: s.Name, Order: s.Order}
		byID[s.ID] = stages[i]
	}

	snapshot := timeline.Snapshot{
		Stages:             stages,
		RegistrationExists: wire.RegistrationExists,
	}
	if wire.CurrentStage != nil {
		current := stagegraph.Stage{ID: wire.CurrentStage.ID, Name: wire.CurrentStage.Name, Order: wire.CurrentStage.Order}
		snapshot.CurrentStage = &current
	}

	snapshot.History = make([]timeline.HistoryEntry, len(wire.History))
	for i, h := range wire.History {
		at, _ := time.Parse(time.RFC3339, h.At)
		to, ok := byID[h.ToStageID]
		if !ok {
			to = stagegraph.Stage{ID: h.ToStageID, Name: h.ToStage}
		}
		entry := timeline.HistoryEntry{
			At:        at,
			ToStage:   to,
			ChangedBy: h.ChangedBy,
			Note:      h.Note,
		}
		if h.FromStageID != nil {
			from, ok := byID[*h.FromStageID]
			if !ok {
				from = stagegraph.Stage{ID: *h.FromStageID}
				if h.FromStage != nil {
					from.Name = *h.FromStage
				}
			}
			entry.FromStage = &from
		}
		snapshot.History[i] = entry
	}
	return snapshot
}
