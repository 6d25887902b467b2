package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/service/txbuilder"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type options struct {
	Network string `long:"network" env:"TXTOOL_NETWORK" description:"network name" default:"bitcoin"`
}

type tool struct {
	opts   options
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
}

func newTool(in io.Reader, out io.Writer, logger *zap.Logger) *tool {
	return &tool{in: in, out: out, logger: logger}
}

func (t *tool) run(args []string) error {
	parser := flags.NewParser(&t.opts, flags.HelpFlag|flags.PassDoubleDash)
	commands := []struct {
		name, short string
		data        any
	}{
		{"encode", "Encode a transaction JSON document to hex", &encodeCommand{tool: t}},
		{"decode", "Decode a hex transaction to JSON", &decodeCommand{tool: t}},
		{"script-info", "Classify and disassemble a script", &scriptInfoCommand{tool: t}},
		{"sighash", "Compute the signature hash of an input", &sighashCommand{signFlags: signFlags{tool: t}}},
		{"sign", "Sign an input", &signCommand{signFlags: signFlags{tool: t}}},
		{"address-script", "Convert an address to its output script", &addressScriptCommand{tool: t}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.data); err != nil {
			return fmt.Errorf("add command %s: %w", c.name, err)
		}
	}
	_, err := parser.ParseArgs(args)
	return err
}

func (t *tool) service() (*txbuilder.Service, error) {
	network := model.Network(t.opts.Network)
	return txbuilder.NewService(metrics.NewTxBuilder(network), network, 0, t.logger)
}

func (t *tool) print(v string) error {
	_, err := fmt.Fprintln(t.out, v)
	return err
}

type encodeCommand struct {
	tool *tool
	File string `long:"file" short:"f" description:"transaction JSON file, - for stdin" default:"-"`
}

func (c *encodeCommand) Execute(_ []string) error {
	var (
		data []byte
		err  error
	)
	if c.File == "-" {
		data, err = io.ReadAll(c.tool.in)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return fmt.Errorf("read transaction: %w", err)
	}

	svc, err := c.tool.service()
	if err != nil {
		return err
	}
	txHex, err := svc.JSONToTxHex(string(data))
	if err != nil {
		return err
	}
	return c.tool.print(txHex)
}

type decodeCommand struct {
	tool *tool
	Hex  string `long:"hex" description:"hex encoded transaction" required:"true"`
}

func (c *decodeCommand) Execute(_ []string) error {
	svc, err := c.tool.service()
	if err != nil {
		return err
	}
	txJSON, err := svc.TxHexToJSON(c.Hex)
	if err != nil {
		return err
	}
	return c.tool.print(txJSON)
}

type scriptInfoCommand struct {
	tool   *tool
	Script string `long:"script" description:"hex encoded script" required:"true"`
}

func (c *scriptInfoCommand) Execute(_ []string) error {
	svc, err := c.tool.service()
	if err != nil {
		return err
	}
	info, err := svc.ScriptInfo(c.Script)
	if err != nil {
		return err
	}
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal script info: %w", err)
	}
	return c.tool.print(string(data))
}

type signFlags struct {
	tool          *tool
	TxHex         string  `long:"tx-hex" description:"hex encoded transaction" required:"true"`
	Index         uint32  `long:"index" description:"input index" default:"0"`
	ScriptPubKey  string  `long:"script-pubkey" description:"script of the spent output" required:"true"`
	SighashType   uint32  `long:"sighash-type" description:"signature hash type" default:"1"`
	SecretKey     string  `long:"secret-key" description:"hex encoded secret key"`
	WitnessScript *string `long:"witness-script" description:"witness script for p2wsh"`
	Amount        *uint64 `long:"amount" description:"spent output amount in satoshis"`
	SigningType   string  `long:"signing-type" description:"legacy, p2wpkh or p2wsh" default:"legacy"`
}

func (f *signFlags) request(svc *txbuilder.Service) (model.SignRequest, error) {
	tx, err := svc.DecodeTx(f.TxHex)
	if err != nil {
		return model.SignRequest{}, err
	}
	return model.SignRequest{
		Tx:            tx,
		Index:         f.Index,
		ScriptPubKey:  f.ScriptPubKey,
		SighashType:   f.SighashType,
		SecretKey:     f.SecretKey,
		WitnessScript: f.WitnessScript,
		Amount:        f.Amount,
		SigningType:   f.SigningType,
	}, nil
}

type sighashCommand struct {
	signFlags
}

func (c *sighashCommand) Execute(_ []string) error {
	svc, err := c.tool.service()
	if err != nil {
		return err
	}
	req, err := c.request(svc)
	if err != nil {
		return err
	}
	digest, err := svc.SignatureHash(req)
	if err != nil {
		return err
	}
	return c.tool.print(digest)
}

type signCommand struct {
	signFlags
}

func (c *signCommand) Execute(_ []string) error {
	svc, err := c.tool.service()
	if err != nil {
		return err
	}
	req, err := c.request(svc)
	if err != nil {
		return err
	}
	signature, err := svc.SignTx(req)
	if err != nil {
		return err
	}
	return c.tool.print(signature)
}

type addressScriptCommand struct {
	tool    *tool
	Address string `long:"address" description:"address to convert" required:"true"`
}

func (c *addressScriptCommand) Execute(_ []string) error {
	svc, err := c.tool.service()
	if err != nil {
		return err
	}
	script, err := svc.AddressToScriptPubKey(c.Address, "")
	if err != nil {
		return err
	}
	return c.tool.print(script)
}
