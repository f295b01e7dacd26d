package tag

import "github.com/codeninja55/rudicom/dicom/vr"

// Well-known tags used throughout this package and by its callers.
//
// This is not the full DICOM Part 6 data dictionary (which runs to several
// thousand entries and is normally machine-generated from NEMA's docbook
// source). It covers file meta information, the patient/study/series/instance
// identifiers the catalog and registration pipeline operate on, and the
// uncompressed pixel data header fields needed for thumbnail rendering.
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)

	SpecificCharacterSet  = New(0x0008, 0x0005)
	InstanceCreationDate  = New(0x0008, 0x0012)
	InstanceCreationTime  = New(0x0008, 0x0013)
	SOPClassUID           = New(0x0008, 0x0016)
	SOPInstanceUID        = New(0x0008, 0x0018)
	StudyDate             = New(0x0008, 0x0020)
	SeriesDate            = New(0x0008, 0x0021)
	ContentDate           = New(0x0008, 0x0023)
	StudyTime             = New(0x0008, 0x0030)
	SeriesTime            = New(0x0008, 0x0031)
	ContentTime           = New(0x0008, 0x0033)
	AccessionNumber       = New(0x0008, 0x0050)
	Modality              = New(0x0008, 0x0060)
	Manufacturer          = New(0x0008, 0x0070)
	InstitutionName       = New(0x0008, 0x0080)
	InstitutionAddress    = New(0x0008, 0x0081)
	ReferringPhysicianName = New(0x0008, 0x0090)

	InstitutionalDepartmentName = New(0x0008, 0x1040)
	PerformingPhysicianName     = New(0x0008, 0x1050)
	OperatorsName               = New(0x0008, 0x1070)
	StudyDescription            = New(0x0008, 0x1030)
	SeriesDescription           = New(0x0008, 0x103E)

	PatientName       = New(0x0010, 0x0010)
	PatientID         = New(0x0010, 0x0020)
	PatientBirthDate  = New(0x0010, 0x0030)
	PatientSex        = New(0x0010, 0x0040)
	PatientAge        = New(0x0010, 0x1010)

	StudyInstanceUID  = New(0x0020, 0x000D)
	SeriesInstanceUID = New(0x0020, 0x000E)
	StudyID           = New(0x0020, 0x0010)
	SeriesNumber      = New(0x0020, 0x0011)
	InstanceNumber    = New(0x0020, 0x0013)

	SamplesPerPixel           = New(0x0028, 0x0002)
	PhotometricInterpretation = New(0x0028, 0x0004)
	PlanarConfiguration       = New(0x0028, 0x0006)
	NumberOfFrames            = New(0x0028, 0x0008)
	Rows                      = New(0x0028, 0x0010)
	Columns                   = New(0x0028, 0x0011)
	BitsAllocated             = New(0x0028, 0x0100)
	BitsStored                = New(0x0028, 0x0101)
	HighBit                   = New(0x0028, 0x0102)
	PixelRepresentation       = New(0x0028, 0x0103)

	PixelData = New(0x7FE0, 0x0010)
)

// TagDict is the dictionary backing Find, FindByKeyword and FindByName.
var TagDict = map[Tag]Info{
	FileMetaInformationGroupLength: {Tag: FileMetaInformationGroupLength, VRs: []vr.VR{vr.UnsignedLong}, Name: "File Meta Information Group Length", Keyword: "FileMetaInformationGroupLength", VM: "1"},
	FileMetaInformationVersion:     {Tag: FileMetaInformationVersion, VRs: []vr.VR{vr.OtherByte}, Name: "File Meta Information Version", Keyword: "FileMetaInformationVersion", VM: "1"},
	MediaStorageSOPClassUID:        {Tag: MediaStorageSOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Class UID", Keyword: "MediaStorageSOPClassUID", VM: "1"},
	MediaStorageSOPInstanceUID:     {Tag: MediaStorageSOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Instance UID", Keyword: "MediaStorageSOPInstanceUID", VM: "1"},
	TransferSyntaxUID:              {Tag: TransferSyntaxUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID", VM: "1"},
	ImplementationClassUID:         {Tag: ImplementationClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Implementation Class UID", Keyword: "ImplementationClassUID", VM: "1"},
	ImplementationVersionName:      {Tag: ImplementationVersionName, VRs: []vr.VR{vr.ShortString}, Name: "Implementation Version Name", Keyword: "ImplementationVersionName", VM: "1"},

	SpecificCharacterSet:   {Tag: SpecificCharacterSet, VRs: []vr.VR{vr.CodeString}, Name: "Specific Character Set", Keyword: "SpecificCharacterSet", VM: "1-n"},
	InstanceCreationDate:   {Tag: InstanceCreationDate, VRs: []vr.VR{vr.Date}, Name: "Instance Creation Date", Keyword: "InstanceCreationDate", VM: "1"},
	InstanceCreationTime:   {Tag: InstanceCreationTime, VRs: []vr.VR{vr.Time}, Name: "Instance Creation Time", Keyword: "InstanceCreationTime", VM: "1"},
	SOPClassUID:            {Tag: SOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Class UID", Keyword: "SOPClassUID", VM: "1"},
	SOPInstanceUID:         {Tag: SOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Instance UID", Keyword: "SOPInstanceUID", VM: "1"},
	StudyDate:              {Tag: StudyDate, VRs: []vr.VR{vr.Date}, Name: "Study Date", Keyword: "StudyDate", VM: "1"},
	SeriesDate:             {Tag: SeriesDate, VRs: []vr.VR{vr.Date}, Name: "Series Date", Keyword: "SeriesDate", VM: "1"},
	ContentDate:            {Tag: ContentDate, VRs: []vr.VR{vr.Date}, Name: "Content Date", Keyword: "ContentDate", VM: "1"},
	StudyTime:              {Tag: StudyTime, VRs: []vr.VR{vr.Time}, Name: "Study Time", Keyword: "StudyTime", VM: "1"},
	SeriesTime:             {Tag: SeriesTime, VRs: []vr.VR{vr.Time}, Name: "Series Time", Keyword: "SeriesTime", VM: "1"},
	ContentTime:            {Tag: ContentTime, VRs: []vr.VR{vr.Time}, Name: "Content Time", Keyword: "ContentTime", VM: "1"},
	AccessionNumber:        {Tag: AccessionNumber, VRs: []vr.VR{vr.ShortString}, Name: "Accession Number", Keyword: "AccessionNumber", VM: "1"},
	Modality:               {Tag: Modality, VRs: []vr.VR{vr.CodeString}, Name: "Modality", Keyword: "Modality", VM: "1"},
	Manufacturer:           {Tag: Manufacturer, VRs: []vr.VR{vr.LongString}, Name: "Manufacturer", Keyword: "Manufacturer", VM: "1"},
	InstitutionName:        {Tag: InstitutionName, VRs: []vr.VR{vr.LongString}, Name: "Institution Name", Keyword: "InstitutionName", VM: "1"},
	InstitutionAddress:     {Tag: InstitutionAddress, VRs: []vr.VR{vr.ShortText}, Name: "Institution Address", Keyword: "InstitutionAddress", VM: "1"},
	ReferringPhysicianName: {Tag: ReferringPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Referring Physician's Name", Keyword: "ReferringPhysicianName", VM: "1"},

	InstitutionalDepartmentName: {Tag: InstitutionalDepartmentName, VRs: []vr.VR{vr.LongString}, Name: "Institutional Department Name", Keyword: "InstitutionalDepartmentName", VM: "1"},
	PerformingPhysicianName:     {Tag: PerformingPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Performing Physician's Name", Keyword: "PerformingPhysicianName", VM: "1-n"},
	OperatorsName:               {Tag: OperatorsName, VRs: []vr.VR{vr.PersonName}, Name: "Operators' Name", Keyword: "OperatorsName", VM: "1-n"},
	StudyDescription:            {Tag: StudyDescription, VRs: []vr.VR{vr.LongString}, Name: "Study Description", Keyword: "StudyDescription", VM: "1"},
	SeriesDescription:           {Tag: SeriesDescription, VRs: []vr.VR{vr.LongString}, Name: "Series Description", Keyword: "SeriesDescription", VM: "1"},

	PatientName:      {Tag: PatientName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Name", Keyword: "PatientName", VM: "1"},
	PatientID:        {Tag: PatientID, VRs: []vr.VR{vr.LongString}, Name: "Patient ID", Keyword: "PatientID", VM: "1"},
	PatientBirthDate: {Tag: PatientBirthDate, VRs: []vr.VR{vr.Date}, Name: "Patient's Birth Date", Keyword: "PatientBirthDate", VM: "1"},
	PatientSex:       {Tag: PatientSex, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex", Keyword: "PatientSex", VM: "1"},
	PatientAge:       {Tag: PatientAge, VRs: []vr.VR{vr.AgeString}, Name: "Patient's Age", Keyword: "PatientAge", VM: "1"},

	StudyInstanceUID:  {Tag: StudyInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Study Instance UID", Keyword: "StudyInstanceUID", VM: "1"},
	SeriesInstanceUID: {Tag: SeriesInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Series Instance UID", Keyword: "SeriesInstanceUID", VM: "1"},
	StudyID:           {Tag: StudyID, VRs: []vr.VR{vr.ShortString}, Name: "Study ID", Keyword: "StudyID", VM: "1"},
	SeriesNumber:      {Tag: SeriesNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Series Number", Keyword: "SeriesNumber", VM: "1"},
	InstanceNumber:    {Tag: InstanceNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Instance Number", Keyword: "InstanceNumber", VM: "1"},

	SamplesPerPixel:           {Tag: SamplesPerPixel, VRs: []vr.VR{vr.UnsignedShort}, Name: "Samples per Pixel", Keyword: "SamplesPerPixel", VM: "1"},
	PhotometricInterpretation: {Tag: PhotometricInterpretation, VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1"},
	PlanarConfiguration:       {Tag: PlanarConfiguration, VRs: []vr.VR{vr.UnsignedShort}, Name: "Planar Configuration", Keyword: "PlanarConfiguration", VM: "1"},
	NumberOfFrames:            {Tag: NumberOfFrames, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Frames", Keyword: "NumberOfFrames", VM: "1"},
	Rows:                      {Tag: Rows, VRs: []vr.VR{vr.UnsignedShort}, Name: "Rows", Keyword: "Rows", VM: "1"},
	Columns:                   {Tag: Columns, VRs: []vr.VR{vr.UnsignedShort}, Name: "Columns", Keyword: "Columns", VM: "1"},
	BitsAllocated:             {Tag: BitsAllocated, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Allocated", Keyword: "BitsAllocated", VM: "1"},
	BitsStored:                {Tag: BitsStored, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Stored", Keyword: "BitsStored", VM: "1"},
	HighBit:                   {Tag: HighBit, VRs: []vr.VR{vr.UnsignedShort}, Name: "High Bit", Keyword: "HighBit", VM: "1"},
	PixelRepresentation:       {Tag: PixelRepresentation, VRs: []vr.VR{vr.UnsignedShort}, Name: "Pixel Representation", Keyword: "PixelRepresentation", VM: "1"},

	PixelData: {Tag: PixelData, VRs: []vr.VR{vr.OtherByte, vr.OtherWord}, Name: "Pixel Data", Keyword: "PixelData", VM: "1"},
}
