package recorder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dispersion/model"
)

const header = "Containers, Iteration, Concentration\n"

// 缓存浓度记录，按 ", " 分隔写出
type CSVWriter struct {
	w io.Writer

	records    []model.Record
	bufferSize int
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		w:          w,
		bufferSize: 1000,
	}
}

// 写表头
func (c *CSVWriter) Init() error {
	_, err := io.WriteString(c.w, header)
	return err
}

// 缓存满时自动 Flush
func (c *CSVWriter) Write(record model.Record) error {
	c.records = append(c.records, record)
	if len(c.records) >= c.bufferSize {
		return c.Flush()
	}
	return nil
}

func (c *CSVWriter) Flush() error {
	for _, r := range c.records {
		_, err := fmt.Fprintf(c.w, "%d, %d, %f\n",
			r.Containers,
			r.Iteration,
			r.Concentration,
		)
		if err != nil {
			return err
		}
	}

	c.records = c.records[:0]
	return nil
}

// 写入 path，已存在的文件会被覆盖
func WriteFile(path string, records []model.Record) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := NewCSVWriter(file)
	if err := w.Init(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// dir 为空时使用用户主目录
func OutputPath(dir, name string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		dir = home
	}
	return filepath.Join(dir, name), nil
}
