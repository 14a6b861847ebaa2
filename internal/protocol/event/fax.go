package event

import "github.com/danmuck/gridctl/internal/protocol"

func init() {
	register(
		func() Event { return &ModeChangeT38{} },
		func() Event { return &ModeChangeT38Refused{} },
		func() Event { return &FaxIncoming{} },
		func() Event { return &FacsimilePageStarted{} },
		func() Event { return &FacsimilePageReceived{} },
		func() Event { return &FacsimilePageSent{} },
		func() Event { return &FaxOperationsStarted{} },
		func() Event { return &FaxOperationFailed{} },
		func() Event { return &FaxOperationFinished{} },
		func() Event { return &FaxOperationAborted{} },
		func() Event { return &DocumentPrepared{} },
		func() Event { return &DocumentNotPrepared{} },
		func() Event { return &DocumentSaved{} },
		func() Event { return &DocumentNotSaved{} },
		func() Event { return &DocumentCleared{} },
	)
}

type ModeChangeT38 struct{ ResourceHeader }

func (*ModeChangeT38) Name() string { return "EModeChangeT38" }

type ModeChangeT38Refused struct{ ResourceHeader }

func (*ModeChangeT38Refused) Name() string { return "EModeChangeT38Refused" }

type FaxIncoming struct{ ResourceHeader }

func (*FaxIncoming) Name() string { return "EFaxIncoming" }

// FacsimilePageStarted reports the negotiated parameters of the next page.
type FacsimilePageStarted struct {
	ResourceHeader
	Speed      protocol.FaxSpeed
	PaperSize  protocol.PaperSize
	Resolution protocol.Resolution
	ECM        protocol.ECM
}

func (*FacsimilePageStarted) Name() string { return "EFacsimilePageStarted" }

func (e *FacsimilePageStarted) fields() protocol.Fields {
	return e.with(
		protocol.FaxSpeedField(&e.Speed),
		protocol.PaperSizeField(&e.PaperSize),
		protocol.ResolutionField(&e.Resolution),
		protocol.ECMField(&e.ECM),
	)
}

type FacsimilePageReceived struct{ ResourceHeader }

func (*FacsimilePageReceived) Name() string { return "EFacsimilePageReceived" }

type FacsimilePageSent struct{ ResourceHeader }

func (*FacsimilePageSent) Name() string { return "EFacsimilePageSent" }

type FaxOperationsStarted struct{ ResourceHeader }

func (*FaxOperationsStarted) Name() string { return "EFaxOperationsStarted" }

type FaxOperationFailed struct{ ResourceHeader }

func (*FaxOperationFailed) Name() string { return "EFaxOperationFailed" }

type FaxOperationFinished struct{ ResourceHeader }

func (*FaxOperationFinished) Name() string { return "EFaxOperationFinished" }

type FaxOperationAborted struct{ ResourceHeader }

func (*FaxOperationAborted) Name() string { return "EFaxOperationAborted" }

type DocumentPrepared struct{ ResourceHeader }

func (*DocumentPrepared) Name() string { return "EDocumentPrepared" }

type DocumentNotPrepared struct {
	ResourceHeader
	Reason string
}

func (*DocumentNotPrepared) Name() string { return "EDocumentNotPrepared" }

func (e *DocumentNotPrepared) fields() protocol.Fields {
	return e.with(protocol.StringField(&e.Reason))
}

type DocumentSaved struct{ ResourceHeader }

func (*DocumentSaved) Name() string { return "EDocumentSaved" }

type DocumentNotSaved struct {
	ResourceHeader
	Reason string
}

func (*DocumentNotSaved) Name() string { return "EDocumentNotSaved" }

func (e *DocumentNotSaved) fields() protocol.Fields {
	return e.with(protocol.StringField(&e.Reason))
}

type DocumentCleared struct{ ResourceHeader }

func (*DocumentCleared) Name() string { return "EDocumentCleared" }
