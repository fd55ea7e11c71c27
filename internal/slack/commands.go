package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdShow    CommandType = "vis"
	CmdDelete  CommandType = "slett"
	CmdTime    CommandType = "tid"
	CmdChannel CommandType = "kanal"
	CmdSend    CommandType = "send"
	CmdConfig  CommandType = "config"
	CmdHelp    CommandType = "hjelp"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "vis", "show", "list":
		cmd.Type = CmdShow
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "slett", "delete", "rm":
		cmd.Type = CmdDelete
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "tid", "time":
		cmd.Type = CmdTime
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "kanal", "channel":
		cmd.Type = CmdChannel
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "send", "now":
		cmd.Type = CmdSend
	case "config", "status":
		cmd.Type = CmdConfig
	case "hjelp", "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("ukjent kommando: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Tilgjengelige kommandoer:*

*Innsjekkinger:*
• ` + "`/innsjekk vis [dato]`" + ` - Viser innsjekkinger for i dag eller en gitt dato (dd.mm.åååå)
• ` + "`/innsjekk slett @bruker [dato]`" + ` - Sletter en brukers innsjekking for dagen

*Konfigurasjon:*
• ` + "`/innsjekk tid HH:MM`" + ` - Setter tidspunkt for daglig melding (f.eks. 08:00)
• ` + "`/innsjekk kanal #kanal`" + ` - Setter kanalen meldingen sendes til
• ` + "`/innsjekk config`" + ` - Viser gjeldende konfigurasjon

*Annet:*
• ` + "`/innsjekk send`" + ` - Sender innsjekkingsmeldingen nå
• ` + "`/innsjekk hjelp`" + ` - Viser denne hjelpeteksten`
}
