package pixel

import (
	"fmt"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/dicom/tag"
	"github.com/codeninja55/rudicom/dicom/value"
)

// Extract extracts pixel data from a DICOM dataset.
//
// This function:
//   - Extracts required pixel metadata (Rows, Columns, BitsAllocated, etc.)
//   - Retrieves the raw pixel data from the PixelData element
//   - Detects the transfer syntax and selects the registered decoder
//   - Returns a PixelData struct with the decoded data and metadata
//
// Only the uncompressed (native) transfer syntaxes have a decoder
// registered in this package; anything else returns a *TransferSyntaxError
// via GetDecoder rather than attempting to decompress — compressed
// transfer syntaxes are delegated to an image library elsewhere.
//
// Required DICOM attributes:
//   - (0028,0010) Rows
//   - (0028,0011) Columns
//   - (0028,0100) BitsAllocated
//   - (0028,0101) BitsStored
//   - (0028,0102) HighBit
//   - (0028,0103) PixelRepresentation
//   - (0028,0002) SamplesPerPixel
//   - (0028,0004) PhotometricInterpretation
//   - (7FE0,0010) PixelData
//   - (0002,0010) TransferSyntaxUID (from File Meta Information)
//
// Optional DICOM attributes:
//   - (0028,0006) PlanarConfiguration (defaults to 0)
//   - (0028,0008) NumberOfFrames (defaults to 1)
func Extract(ds *dicom.DataSet) (*PixelData, error) {
	rows, err := getUint16(ds, tag.Rows, "Rows")
	if err != nil {
		return nil, err
	}
	columns, err := getUint16(ds, tag.Columns, "Columns")
	if err != nil {
		return nil, err
	}
	bitsAllocated, err := getUint16(ds, tag.BitsAllocated, "BitsAllocated")
	if err != nil {
		return nil, err
	}
	bitsStored, err := getUint16(ds, tag.BitsStored, "BitsStored")
	if err != nil {
		return nil, err
	}
	highBit, err := getUint16(ds, tag.HighBit, "HighBit")
	if err != nil {
		return nil, err
	}
	pixelRepresentation, err := getUint16(ds, tag.PixelRepresentation, "PixelRepresentation")
	if err != nil {
		return nil, err
	}
	samplesPerPixel, err := getUint16(ds, tag.SamplesPerPixel, "SamplesPerPixel")
	if err != nil {
		return nil, err
	}
	photometricInterpretation, err := getString(ds, tag.PhotometricInterpretation, "PhotometricInterpretation")
	if err != nil {
		return nil, err
	}

	planarConfiguration := getUint16WithDefault(ds, tag.PlanarConfiguration, 0)
	numberOfFrames := getIntWithDefault(ds, tag.NumberOfFrames, 1)

	transferSyntaxUID, err := getString(ds, tag.TransferSyntaxUID, "TransferSyntaxUID")
	if err != nil {
		return nil, err
	}

	pixelDataElem, err := ds.Get(tag.PixelData)
	if err != nil {
		return nil, &MissingAttributeError{AttributeName: "PixelData", Tag: tag.PixelData.String()}
	}

	pixelDataValue := pixelDataElem.Value()
	bytesVal, ok := pixelDataValue.(*value.BytesValue)
	if !ok {
		return nil, &PixelDataError{
			Field:    "PixelData value type",
			Expected: "*value.BytesValue",
			Actual:   fmt.Sprintf("%T", pixelDataValue),
		}
	}
	raw := bytesVal.Bytes()

	decoder, err := GetDecoder(transferSyntaxUID)
	if err != nil {
		return nil, err
	}

	info := &PixelInfo{
		Rows:                      rows,
		Columns:                   columns,
		BitsAllocated:             bitsAllocated,
		BitsStored:                bitsStored,
		HighBit:                   highBit,
		PixelRepresentation:       pixelRepresentation,
		SamplesPerPixel:           samplesPerPixel,
		PhotometricInterpretation: photometricInterpretation,
		PlanarConfiguration:       planarConfiguration,
		NumberOfFrames:            numberOfFrames,
		TransferSyntaxUID:         transferSyntaxUID,
	}

	decoded, err := decoder.Decode(raw, info)
	if err != nil {
		return nil, err
	}

	if err := ValidatePixelData(decoded, info); err != nil {
		return nil, err
	}

	return &PixelData{
		Rows:                      rows,
		Columns:                   columns,
		BitsAllocated:             bitsAllocated,
		BitsStored:                bitsStored,
		HighBit:                   highBit,
		PixelRepresentation:       pixelRepresentation,
		SamplesPerPixel:           samplesPerPixel,
		PhotometricInterpretation: photometricInterpretation,
		PlanarConfiguration:       planarConfiguration,
		NumberOfFrames:            numberOfFrames,
		data:                      decoded,
		TransferSyntaxUID:         transferSyntaxUID,
	}, nil
}

func getUint16(ds *dicom.DataSet, t tag.Tag, name string) (uint16, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return 0, &MissingAttributeError{AttributeName: name, Tag: t.String()}
	}

	intVal, ok := elem.Value().(*value.IntValue)
	if !ok {
		return 0, &PixelDataError{Field: fmt.Sprintf("%s value type", name), Expected: "*value.IntValue", Actual: fmt.Sprintf("%T", elem.Value())}
	}

	ints := intVal.Ints()
	if len(ints) == 0 {
		return 0, &PixelDataError{Field: fmt.Sprintf("%s value", name), Expected: "non-empty integer array", Actual: "empty array"}
	}

	val := ints[0]
	if val < 0 || val > 65535 {
		return 0, &PixelDataError{Field: fmt.Sprintf("%s value", name), Expected: "uint16 range [0, 65535]", Actual: fmt.Sprintf("%d", val)}
	}
	return uint16(val), nil
}

func getUint16WithDefault(ds *dicom.DataSet, t tag.Tag, defaultVal uint16) uint16 {
	elem, err := ds.Get(t)
	if err != nil {
		return defaultVal
	}
	intVal, ok := elem.Value().(*value.IntValue)
	if !ok {
		return defaultVal
	}
	ints := intVal.Ints()
	if len(ints) == 0 {
		return defaultVal
	}
	val := ints[0]
	if val < 0 || val > 65535 {
		return defaultVal
	}
	return uint16(val)
}

func getIntWithDefault(ds *dicom.DataSet, t tag.Tag, defaultVal int) int {
	elem, err := ds.Get(t)
	if err != nil {
		return defaultVal
	}

	switch v := elem.Value().(type) {
	case *value.IntValue:
		ints := v.Ints()
		if len(ints) == 0 {
			return defaultVal
		}
		return int(ints[0])
	case *value.StringValue:
		strs := v.Strings()
		if len(strs) == 0 {
			return defaultVal
		}
		var val int
		if _, err := fmt.Sscanf(strs[0], "%d", &val); err != nil {
			return defaultVal
		}
		return val
	default:
		return defaultVal
	}
}

func getString(ds *dicom.DataSet, t tag.Tag, name string) (string, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return "", &MissingAttributeError{AttributeName: name, Tag: t.String()}
	}
	strVal, ok := elem.Value().(*value.StringValue)
	if !ok {
		return "", &PixelDataError{Field: fmt.Sprintf("%s value type", name), Expected: "*value.StringValue", Actual: fmt.Sprintf("%T", elem.Value())}
	}
	strs := strVal.Strings()
	if len(strs) == 0 {
		return "", &PixelDataError{Field: fmt.Sprintf("%s value", name), Expected: "non-empty string array", Actual: "empty array"}
	}
	return strs[0], nil
}
