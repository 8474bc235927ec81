package tone

import "encoding/binary"

const (
	HeaderSize = 44

	fmtChunkSize  = 16
	formatPCM     = 1
	channels      = 1
	bitsPerSample = 16
	blockAlign    = channels * bitsPerSample / 8
)

// Containerize wraps 16-bit mono PCM in a canonical 44-byte WAVE header.
func Containerize(pcm []int16, sampleRate int) []byte {
	dataSize := len(pcm) * blockAlign
	buf := make([]byte, HeaderSize+dataSize)
	le := binary.LittleEndian

	// RIFF header
	copy(buf[0:4], "RIFF")
	le.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	// fmt chunk
	copy(buf[12:16], "fmt ")
	le.PutUint32(buf[16:20], fmtChunkSize)
	le.PutUint16(buf[20:22], formatPCM)
	le.PutUint16(buf[22:24], channels)
	le.PutUint32(buf[24:28], uint32(sampleRate))
	le.PutUint32(buf[28:32], uint32(sampleRate*blockAlign))
	le.PutUint16(buf[32:34], blockAlign)
	le.PutUint16(buf[34:36], bitsPerSample)

	// data chunk
	copy(buf[36:40], "data")
	le.PutUint32(buf[40:44], uint32(dataSize))

	off := HeaderSize
	for _, s := range pcm {
		le.PutUint16(buf[off:off+2], uint16(s))
		off += 2
	}
	return buf
}
