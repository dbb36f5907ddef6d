package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
)

// State holds the replay preferences remembered between runs. Routes and
// visit counts are never stored.
type State struct {
	Policy     string    `json:"policy"`      // Delivery policy: single, dual or both
	Speed      string    `json:"speed"`       // Replay speed: slow, normal or fast
	SpriteSize string    `json:"sprite_size"` // Cell size: small, medium, large
	SavedAt    time.Time `json:"saved_at"`    // Last save time
}

const (
	// Delivery policies
	PolicySingle  = "single"
	PolicyDual    = "dual"
	PolicyBoth    = "both"
	PolicyDefault = PolicyBoth

	// Replay speeds
	SpeedSlow    = "slow"
	SpeedNormal  = "normal"
	SpeedFast    = "fast"
	SpeedDefault = SpeedNormal

	// Sprite sizes
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteMedium
)

// SavePath returns the path of the state file. Tests replace it.
var SavePath = getSavePath

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID("presents")
	if err != nil {
		appID = "default-presents-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

// New returns the default preferences.
func New() *State {
	return &State{
		Policy:     PolicyDefault,
		Speed:      SpeedDefault,
		SpriteSize: SpriteDefault,
	}
}

// Interval returns the delay between replayed moves for the current speed.
func (s *State) Interval() time.Duration {
	switch s.Speed {
	case SpeedSlow:
		return 250 * time.Millisecond
	case SpeedFast:
		return 10 * time.Millisecond
	default:
		return 60 * time.Millisecond
	}
}

// Faster moves one speed step up, stopping at fast.
func (s *State) Faster() {
	switch s.Speed {
	case SpeedSlow:
		s.Speed = SpeedNormal
	default:
		s.Speed = SpeedFast
	}
}

// Slower moves one speed step down, stopping at slow.
func (s *State) Slower() {
	switch s.Speed {
	case SpeedFast:
		s.Speed = SpeedNormal
	default:
		s.Speed = SpeedSlow
	}
}

// Save persists the current state to an encrypted file with an integrity check.
func (s *State) Save() error {
	path, err := SavePath()
	if err != nil {
		return err
	}
	s.SavedAt = time.Now()

	// Serialize to JSON
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	// Encrypt
	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}

	return os.WriteFile(path, encrypted, 0644)
}

// Load reads the state from disk, decrypts and verifies it. Any failure
// yields the defaults.
func Load() *State {
	path, err := SavePath()
	if err != nil {
		return New()
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return New()
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return New()
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return New()
	}

	s := New()
	if err = json.Unmarshal(payload, s); err != nil {
		return New() // Corrupted JSON
	}
	s.normalize()
	return s
}

// normalize replaces unknown values, e.g. from an older version, with defaults.
func (s *State) normalize() {
	switch s.Policy {
	case PolicySingle, PolicyDual, PolicyBoth:
	default:
		s.Policy = PolicyDefault
	}
	switch s.Speed {
	case SpeedSlow, SpeedNormal, SpeedFast:
	default:
		s.Speed = SpeedDefault
	}
	switch s.SpriteSize {
	case SpriteSmall, SpriteMedium, SpriteLarge:
	default:
		s.SpriteSize = SpriteDefault
	}
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config directory.
func getSavePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	saveDir := filepath.Join(configDir, "presents")
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, "state.dat"), nil
}
