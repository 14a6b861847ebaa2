package command

import "github.com/danmuck/gridctl/internal/protocol"

// FaxReceive receives a fax into the document resource DocumentResourceID.
type FaxReceive struct {
	ResourceID         protocol.ResourceID
	DocumentResourceID protocol.ResourceID
	ECM                *protocol.ECM
}

func NewFaxReceive(id, document protocol.ResourceID) *FaxReceive {
	return &FaxReceive{ResourceID: id, DocumentResourceID: document}
}

func (*FaxReceive) Name() string { return "FaxReceive" }

func (c *FaxReceive) fields() protocol.Fields {
	fs := pair(&c.ResourceID, &c.DocumentResourceID)
	fs.Named = []protocol.Named{
		protocol.Key("ECM", &c.ECM, protocol.ECMField),
	}
	return fs
}

// FaxSend transmits a prepared document.
type FaxSend struct {
	ResourceID         protocol.ResourceID
	DocumentResourceID protocol.ResourceID
	Speed              *protocol.FaxSpeed
	ECM                *protocol.ECM
	Header             *string
}

func NewFaxSend(id, document protocol.ResourceID) *FaxSend {
	return &FaxSend{ResourceID: id, DocumentResourceID: document}
}

func (*FaxSend) Name() string { return "FaxSend" }

func (c *FaxSend) fields() protocol.Fields {
	fs := pair(&c.ResourceID, &c.DocumentResourceID)
	fs.Named = []protocol.Named{
		protocol.Key("Speed", &c.Speed, protocol.FaxSpeedField),
		protocol.Key("ECM", &c.ECM, protocol.ECMField),
		protocol.Key("Header", &c.Header, protocol.StringField),
	}
	return fs
}

type FaxAbort struct {
	ResourceID protocol.ResourceID
}

func NewFaxAbort(id protocol.ResourceID) *FaxAbort { return &FaxAbort{ResourceID: id} }

func (*FaxAbort) Name() string              { return "FaxAbort" }
func (c *FaxAbort) fields() protocol.Fields { return resource(&c.ResourceID) }

// DocumentAddFile appends a server-side file to the document.
type DocumentAddFile struct {
	ResourceID protocol.ResourceID
	FileName   string
}

func NewDocumentAddFile(id protocol.ResourceID, fileName string) *DocumentAddFile {
	return &DocumentAddFile{ResourceID: id, FileName: fileName}
}

func (*DocumentAddFile) Name() string              { return "DocumentAddFile" }
func (c *DocumentAddFile) fields() protocol.Fields { return withFile(&c.ResourceID, &c.FileName) }

// DocumentPrepare renders the added files into fax pages.
type DocumentPrepare struct {
	ResourceID protocol.ResourceID
	PaperSize  *protocol.PaperSize
	Resolution *protocol.Resolution
}

func NewDocumentPrepare(id protocol.ResourceID) *DocumentPrepare {
	return &DocumentPrepare{ResourceID: id}
}

func (*DocumentPrepare) Name() string { return "DocumentPrepare" }

func (c *DocumentPrepare) fields() protocol.Fields {
	fs := resource(&c.ResourceID)
	fs.Named = []protocol.Named{
		protocol.Key("PaperSize", &c.PaperSize, protocol.PaperSizeField),
		protocol.Key("Resolution", &c.Resolution, protocol.ResolutionField),
	}
	return fs
}

type DocumentSave struct {
	ResourceID protocol.ResourceID
	FileName   string
}

func NewDocumentSave(id protocol.ResourceID, fileName string) *DocumentSave {
	return &DocumentSave{ResourceID: id, FileName: fileName}
}

func (*DocumentSave) Name() string              { return "DocumentSave" }
func (c *DocumentSave) fields() protocol.Fields { return withFile(&c.ResourceID, &c.FileName) }

type DocumentClear struct {
	ResourceID protocol.ResourceID
}

func NewDocumentClear(id protocol.ResourceID) *DocumentClear { return &DocumentClear{ResourceID: id} }

func (*DocumentClear) Name() string              { return "DocumentClear" }
func (c *DocumentClear) fields() protocol.Fields { return resource(&c.ResourceID) }

func withFile(id *protocol.ResourceID, file *string) protocol.Fields {
	return protocol.Fields{
		Positional: []protocol.Field{
			protocol.ResourceField(id),
			protocol.StringField(file),
		},
	}
}
