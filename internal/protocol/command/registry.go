package command

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danmuck/gridctl/internal/protocol"
)

// ErrUnknownCommand reports a name with no command kind.
var ErrUnknownCommand = errors.New("command: unknown command")

// factories builds each command with its constructor defaults applied, so a
// parsed line only overrides what it names.
var factories = map[string]func() Command{
	"ProtocolVersion": func() Command { return &ProtocolVersion{} },
	"GetVersion":      func() Command { return &GetVersion{} },
	"Login":           func() Command { return NewLogin("", "") },
	"Logout":          func() Command { return &Logout{} },
	"Quit":            func() Command { return &Quit{} },

	"ResourceCreateFrontEnd":         func() Command { return &ResourceCreateFrontEnd{} },
	"ResourceCreatePlayer":           func() Command { return &ResourceCreatePlayer{} },
	"ResourceCreateRecorder":         func() Command { return &ResourceCreateRecorder{} },
	"ResourceCreateTransportChannel": func() Command { return &ResourceCreateTransportChannel{} },
	"ResourceCreateRtpChannel":       func() Command { return &ResourceCreateRtpChannel{} },
	"ResourceCreateSoundDevice":      func() Command { return &ResourceCreateSoundDevice{} },
	"ResourceCreateFax":              func() Command { return &ResourceCreateFax{} },
	"ResourceCreateDocument":         func() Command { return &ResourceCreateDocument{} },
	"ResourceDelete":                 func() Command { return &ResourceDelete{} },
	"ResourceGetStatus":              func() Command { return &ResourceGetStatus{} },

	"CallMake":                 func() Command { return NewCallMake(0, "") },
	"CallAnswer":               func() Command { return &CallAnswer{} },
	"CallClear":                func() Command { return &CallClear{} },
	"CallTransferConsultation": func() Command { return &CallTransferConsultation{} },
	"CallTransferBlind":        func() Command { return NewCallTransferBlind(0, "") },
	"CallHold":                 func() Command { return &CallHold{} },
	"CallRetrieve":             func() Command { return &CallRetrieve{} },
	"CallSendDTMF":             func() Command { return NewCallSendDTMF(0, "") },
	"CallStopActivity":         func() Command { return &CallStopActivity{} },
	"CallT38Relay":             func() Command { return &CallT38Relay{} },
	"CallsSetAlertingType":     func() Command { return &CallsSetAlertingType{} },
	"CallsSetAccepting":        func() Command { return &CallsSetAccepting{} },

	"PlayFile":                 func() Command { return &PlayFile{} },
	"PlayStream":               func() Command { return &PlayStream{} },
	"PlayTone":                 func() Command { return &PlayTone{} },
	"PlayStop":                 func() Command { return &PlayStop{} },
	"RecorderStartToFile":      func() Command { return &RecorderStartToFile{} },
	"RecorderStartToStream":    func() Command { return &RecorderStartToStream{} },
	"RecorderStop":             func() Command { return &RecorderStop{} },
	"RtpChannelStartReceiving": func() Command { return &RtpChannelStartReceiving{} },
	"RtpChannelStartSending":   func() Command { return &RtpChannelStartSending{} },
	"RtpChannelStop":           func() Command { return &RtpChannelStop{} },
	"RtpChannelSendDTMF":       func() Command { return NewRtpChannelSendDTMF(0, "") },
	"SoundDeviceStart":         func() Command { return &SoundDeviceStart{} },
	"SoundDeviceStop":          func() Command { return &SoundDeviceStop{} },

	"FaxReceive":      func() Command { return &FaxReceive{} },
	"FaxSend":         func() Command { return &FaxSend{} },
	"FaxAbort":        func() Command { return &FaxAbort{} },
	"DocumentAddFile": func() Command { return &DocumentAddFile{} },
	"DocumentPrepare": func() Command { return &DocumentPrepare{} },
	"DocumentSave":    func() Command { return &DocumentSave{} },
	"DocumentClear":   func() Command { return &DocumentClear{} },

	"AudioSend":                       func() Command { return &AudioSend{} },
	"AudioCancel":                     func() Command { return &AudioCancel{} },
	"AudioLevelNotificationSend":      func() Command { return &AudioLevelNotificationSend{} },
	"AudioLevelNotificationCancel":    func() Command { return &AudioLevelNotificationCancel{} },
	"InBandSignalingDetectionEnable":  func() Command { return &InBandSignalingDetectionEnable{} },
	"InBandSignalingDetectionDisable": func() Command { return &InBandSignalingDetectionDisable{} },
	"GetRtpStatistics":                func() Command { return &GetRtpStatistics{} },
}

// Names returns every command name in sorted order.
func Names() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a fresh command for name with constructor defaults applied.
func Lookup(name string) (Command, bool) {
	f, ok := factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Parse reads a command line as typed at a console: the same layout Encode
// produces, without the tag. Fields the line leaves out keep their defaults.
// An empty line yields (nil, nil).
func Parse(line string) (Command, error) {
	tokens := protocol.Tokenize(line)
	if len(tokens) == 0 {
		return nil, nil
	}
	cmd, ok := Lookup(tokens[0])
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, tokens[0])
	}
	if err := protocol.ParseFields(tokens, cmd.fields()); err != nil {
		return nil, err
	}
	return cmd, nil
}
