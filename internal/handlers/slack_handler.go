package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/morningbot/morning-signin-bot/internal/domain"
	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
	slackcmd "github.com/morningbot/morning-signin-bot/internal/slack"
)

type SlackHandler struct {
	signInService   contract.SignInService
	notifier        contract.Notifier
	scheduleService contract.ScheduleService
	signingSecret   string
}

func New(signInService contract.SignInService, notifier contract.Notifier, scheduleService contract.ScheduleService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		signInService:   signInService,
		notifier:        notifier,
		scheduleService: scheduleService,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleInteractivity receives Block Kit interaction payloads. Button
// clicks are dispatched to the sign-in service, which answers the user
// ephemerally; the HTTP response is just the ack Slack expects.
func (h *SlackHandler) HandleInteractivity(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var payload slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &payload); err != nil {
		log.Printf("Failed to decode interaction payload: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if payload.Type == slack.InteractionTypeBlockActions {
		for _, action := range payload.ActionCallback.BlockActions {
			click := h.buttonClickFromPayload(&payload, action.ActionID)
			// Ack within Slack's deadline; the intake answers the user
			// on its own via an ephemeral message.
			go h.signInService.RegisterButtonClick(click)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) buttonClickFromPayload(payload *slack.InteractionCallback, actionID string) entity.ButtonClick {
	return entity.ButtonClick{
		UserID:    payload.User.ID,
		Username:  payload.User.Name,
		ChannelID: payload.Channel.ID,
		Action:    domain.ActionFromID(actionID),
	}
}

// verifyRequest checks the Slack signature and returns the raw body for
// re-reading. On failure it has already written the status code.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdShow:
		return h.handleShow(cmd)
	case slackcmd.CmdDelete:
		return h.handleDelete(cmd)
	case slackcmd.CmdTime:
		return h.handleSetTime(cmd)
	case slackcmd.CmdChannel:
		return h.handleSetChannel(cmd, slashCmd)
	case slackcmd.CmdSend:
		return h.handleSendNow()
	case slackcmd.CmdConfig:
		return h.handleConfig()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Ukjent kommando")
	}
}

func (h *SlackHandler) handleShow(cmd *slackcmd.Command) *slack.Msg {
	date := time.Now().UTC()
	if len(cmd.Args) > 0 {
		parsed, err := parseDate(cmd.Args[0])
		if err != nil {
			return h.createErrorResponse("Ugyldig dato. Bruk formatet dd.mm.åååå, f.eks. 24.12.2025")
		}
		date = parsed
	}

	entries, err := h.signInService.ListForDate(date)
	if err != nil {
		return h.createErrorResponse("Kunne ikke hente innsjekkinger")
	}

	if len(entries) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Ingen innsjekkinger registrert for %s.", date.Format("02.01.2006")),
		}
	}

	// Group by type, keeping the arrival order inside each group.
	byType := make(map[string][]*entity.SignIn)
	var order []string
	for _, entry := range entries {
		if _, seen := byType[entry.SignInType]; !seen {
			order = append(order, entry.SignInType)
		}
		byType[entry.SignInType] = append(byType[entry.SignInType], entry)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*Innsjekkinger for %s:*\n", date.Format("02.01.2006")))
	for _, signInType := range order {
		sb.WriteString(fmt.Sprintf("\n*%s:*\n", signInType))
		for i, entry := range byType[signInType] {
			sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, entry.Username, entry.Timestamp.Format("15:04")))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotalt: %d", len(entries)))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleDelete(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Vennligst oppgi bruker: `/innsjekk slett @bruker [dato]`")
	}

	userID, ok := parseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Ugyldig bruker. Bruk en @-mention, f.eks. `/innsjekk slett @ola`")
	}

	date := time.Now().UTC()
	if len(cmd.Args) > 1 {
		parsed, err := parseDate(cmd.Args[1])
		if err != nil {
			return h.createErrorResponse("Ugyldig dato. Bruk formatet dd.mm.åååå, f.eks. 24.12.2025")
		}
		date = parsed
	}

	count, err := h.signInService.DeleteForDate(userID, date)
	if err != nil {
		return h.createErrorResponse("Kunne ikke slette innsjekkingen")
	}

	if count == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Fant ingen innsjekking for <@%s> den %s.", userID, date.Format("02.01.2006")),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Slettet %d innsjekking(er) for <@%s> den %s.", count, userID, date.Format("02.01.2006")),
	}
}

func (h *SlackHandler) handleSetTime(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Vennligst oppgi tidspunkt: `/innsjekk tid HH:MM`")
	}

	hour, minute, err := parseClock(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse("Ugyldig tidspunkt. Bruk formatet HH:MM, f.eks. 08:00")
	}

	if err := h.scheduleService.SetTime(hour, minute); err != nil {
		return h.createErrorResponse("Kunne ikke oppdatere tidspunktet")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Daglig melding sendes nå klokken %02d:%02d.", hour, minute),
	}
}

func (h *SlackHandler) handleSetChannel(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	// Without an argument, use the channel the command was issued in.
	channelID := slashCmd.ChannelID
	if len(cmd.Args) > 0 {
		parsed, ok := parseChannelMention(cmd.Args[0])
		if !ok {
			return h.createErrorResponse("Ugyldig kanal. Bruk en #-referanse, f.eks. `/innsjekk kanal #general`")
		}
		channelID = parsed
	}

	if err := h.scheduleService.SetChannel(channelID); err != nil {
		return h.createErrorResponse("Kunne ikke oppdatere kanalen")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Daglig melding sendes nå til <#%s>.", channelID),
	}
}

func (h *SlackHandler) handleSendNow() *slack.Msg {
	if err := h.notifier.SendDailySignIn(); err != nil {
		log.Printf("Manual sign-in message send failed: %v", err)
		return h.createErrorResponse("Kunne ikke sende innsjekkingsmeldingen")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Innsjekkingsmeldingen er sendt.",
	}
}

func (h *SlackHandler) handleConfig() *slack.Msg {
	cfg, err := h.scheduleService.GetConfig()
	if err != nil {
		return h.createErrorResponse("Ingen konfigurasjon funnet")
	}

	channel := "ikke satt"
	if cfg.TargetChannelID != "" {
		channel = fmt.Sprintf("<#%s>", cfg.TargetChannelID)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("*Gjeldende konfigurasjon:*\n• Tidspunkt: %02d:%02d\n• Kanal: %s",
			cfg.SignInHour, cfg.SignInMinute, channel),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// parseDate accepts Norwegian dd.mm.yyyy and ISO yyyy-mm-dd.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"02.01.2006", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %s", s)
}

// parseClock parses HH:MM into hour and minute.
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %s", s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour: %s", parts[0])
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute: %s", parts[1])
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time out of range: %s", s)
	}
	return hour, minute, nil
}

// parseUserMention extracts the user ID from <@U123456789|name> or
// <@U123456789>.
func parseUserMention(mention string) (string, bool) {
	s := strings.TrimSpace(mention)
	if !strings.HasPrefix(s, "<@") || !strings.HasSuffix(s, ">") {
		return "", false
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "<@"), ">")
	if idx := strings.Index(s, "|"); idx >= 0 {
		s = s[:idx]
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// parseChannelMention extracts the channel ID from <#C123456789|name>
// or <#C123456789>.
func parseChannelMention(mention string) (string, bool) {
	s := strings.TrimSpace(mention)
	if !strings.HasPrefix(s, "<#") || !strings.HasSuffix(s, ">") {
		return "", false
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "<#"), ">")
	if idx := strings.Index(s, "|"); idx >= 0 {
		s = s[:idx]
	}
	if s == "" {
		return "", false
	}
	return s, true
}
